package api

import (
	"encoding/json"

	"github.com/google/uuid"
	"go.uber.org/zap"

	cerr "github.com/saeidalz13/battleship-validator/internal/error"
	mb "github.com/saeidalz13/battleship-validator/models/battleship"
	mc "github.com/saeidalz13/battleship-validator/models/connection"
)

type RequestHandler interface {
	HandleValidateBoard() (mc.Message[mc.RespValidateBoard], *mb.Result)
	HandleFleetPresets() mc.Message[mc.RespFleetPresets]
}

// Every incoming valid request will have this structure
// The request then is handled in line with RequestHandler interface
type Request struct {
	payload []byte
}

var _ RequestHandler = Request{}

func NewRequest(payload ...[]byte) Request {
	if len(payload) == 0 {
		return Request{}
	}
	return Request{payload: payload[0]}
}

// Decodes the board and fleet out of the payload and runs the
// validator. The verdict is nil when the request itself was
// malformed; the error is then carried in the message.
func (r Request) HandleValidateBoard() (mc.Message[mc.RespValidateBoard], *mb.Result) {
	resp := mc.NewMessage[mc.RespValidateBoard](mc.CodeValidateBoard)

	var req mc.Message[mc.ReqValidateBoard]
	if err := json.Unmarshal(r.payload, &req); err != nil {
		resp.AddError(err.Error(), "failed to unmarshal validate board payload")
		return resp, nil
	}

	grid, err := boardFromRequest(req.Payload)
	if err != nil {
		resp.AddError(err.Error(), "invalid board")
		return resp, nil
	}

	fleet, err := fleetFromRequest(req.Payload)
	if err != nil {
		resp.AddError(err.Error(), "invalid fleet")
		return resp, nil
	}

	res, err := mb.Validate(grid, fleet)
	if err != nil {
		resp.AddError(err.Error(), "invalid board")
		return resp, nil
	}

	requestId := uuid.NewString()
	if !res.Valid {
		zap.S().Debugf("board rejected\trequest: %s\treason: %s", requestId, res.Reason)
	}

	resp.AddPayload(mc.NewRespValidateBoard(requestId, res))
	return resp, &res
}

func (r Request) HandleFleetPresets() mc.Message[mc.RespFleetPresets] {
	resp := mc.NewMessage[mc.RespFleetPresets](mc.CodeFleetPresets)
	resp.AddPayload(mc.RespFleetPresets{Presets: mb.FleetPresets()})
	return resp
}

func boardFromRequest(req mc.ReqValidateBoard) (mb.Grid, error) {
	if req.Grid != nil && req.Symbols != nil {
		return nil, cerr.ErrGridAndSymbolsBothSet()
	}
	if req.Symbols != nil {
		return mb.ParseSymbolRows(req.Symbols)
	}
	return req.Grid, nil
}

// A nil fleet is resolved to the classic one by the validator.
func fleetFromRequest(req mc.ReqValidateBoard) (mb.Fleet, error) {
	if req.Preset == "" {
		return req.Fleet, nil
	}
	if req.Fleet != nil {
		return nil, cerr.ErrFleetAndPresetBothSet()
	}
	return mb.FleetForPreset(req.Preset)
}
