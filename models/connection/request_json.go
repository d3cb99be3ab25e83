package connection

import (
	mb "github.com/saeidalz13/battleship-validator/models/battleship"
)

// Either Grid or Symbols carries the board. Fleet and Preset are
// both optional; when neither is set the classic fleet is used.
type ReqValidateBoard struct {
	Grid    mb.Grid  `json:"grid,omitempty"`
	Symbols []string `json:"symbols,omitempty"`
	Fleet   mb.Fleet `json:"fleet,omitempty"`
	Preset  string   `json:"preset,omitempty"`
}
