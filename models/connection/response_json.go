package connection

import (
	mb "github.com/saeidalz13/battleship-validator/models/battleship"
)

type RespSessionId struct {
	SessionID string `json:"session_id"`
}

type RespValidateBoard struct {
	RequestID string          `json:"request_id"`
	Valid     bool            `json:"valid"`
	Fleet     mb.Fleet        `json:"fleet,omitempty"`
	Segments  []mb.Segment    `json:"segments,omitempty"`
	Reason    string          `json:"reason,omitempty"`
	Cell      *mb.Coordinates `json:"cell,omitempty"`
}

func NewRespValidateBoard(requestId string, res mb.Result) RespValidateBoard {
	return RespValidateBoard{
		RequestID: requestId,
		Valid:     res.Valid,
		Fleet:     res.Fleet,
		Segments:  res.Segments,
		Reason:    res.Reason,
		Cell:      res.Cell,
	}
}

type RespFleetPresets struct {
	Presets []mb.FleetPreset `json:"presets"`
}

type RespErr struct {
	ErrorDetails string `json:"error_details,omitempty"`
	Message      string `json:"message,omitempty"`
}

func NewRespErr(errorDetails, message string) *RespErr {
	return &RespErr{
		ErrorDetails: errorDetails,
		Message:      message,
	}
}
