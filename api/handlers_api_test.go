package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mb "github.com/saeidalz13/battleship-validator/models/battleship"
	mc "github.com/saeidalz13/battleship-validator/models/connection"
)

func mustMarshal(t *testing.T, v interface{}) []byte {
	t.Helper()
	payload, err := json.Marshal(v)
	require.NoError(t, err)
	return payload
}

func validateMsg(req mc.ReqValidateBoard) mc.Message[mc.ReqValidateBoard] {
	msg := mc.NewMessage[mc.ReqValidateBoard](mc.CodeValidateBoard)
	msg.AddPayload(req)
	return msg
}

func TestHandleValidateBoard(t *testing.T) {
	tests := []struct {
		name          string
		payload       []byte
		expectedValid bool
		expectedFleet mb.Fleet
		expectedErr   bool
	}{
		{
			name:          "grid with custom fleet",
			payload:       mustMarshal(t, validateMsg(mc.ReqValidateBoard{Grid: mb.Grid{{1, 1}, {0, 0}}, Fleet: mb.Fleet{2: 1}})),
			expectedValid: true,
			expectedFleet: mb.Fleet{2: 1},
		},
		{
			name: "symbols with preset",
			payload: mustMarshal(t, validateMsg(mc.ReqValidateBoard{
				Symbols: []string{
					"**...",
					".....",
					"***..",
					".....",
					"****.",
				},
				Preset: mb.FleetPresetEasy,
			})),
			expectedValid: true,
			expectedFleet: mb.Fleet{2: 1, 3: 1, 4: 1},
		},
		{
			name:    "diagonal singles",
			payload: mustMarshal(t, validateMsg(mc.ReqValidateBoard{Grid: mb.Grid{{1, 0}, {0, 1}}, Fleet: mb.Fleet{1: 2}})),
		},
		{
			name:    "unknown symbol is a rule violation",
			payload: mustMarshal(t, validateMsg(mc.ReqValidateBoard{Symbols: []string{"*?"}, Fleet: mb.Fleet{1: 1}})),
		},
		{
			name:    "fleet count far beyond the grid",
			payload: []byte(`{"code": 1, "payload": {"grid": [[1]], "fleet": {"1": 17179869184}}}`),
		},
		{
			name:        "jagged grid",
			payload:     mustMarshal(t, validateMsg(mc.ReqValidateBoard{Grid: mb.Grid{{1, 0}, {0}}})),
			expectedErr: true,
		},
		{
			name:        "grid and symbols",
			payload:     mustMarshal(t, validateMsg(mc.ReqValidateBoard{Grid: mb.Grid{{1}}, Symbols: []string{"*"}})),
			expectedErr: true,
		},
		{
			name:        "fleet and preset",
			payload:     mustMarshal(t, validateMsg(mc.ReqValidateBoard{Grid: mb.Grid{{1}}, Fleet: mb.Fleet{1: 1}, Preset: mb.FleetPresetHard})),
			expectedErr: true,
		},
		{
			name:        "unknown preset",
			payload:     mustMarshal(t, validateMsg(mc.ReqValidateBoard{Grid: mb.Grid{{1}}, Preset: "giant"})),
			expectedErr: true,
		},
		{
			name:        "cell value out of range",
			payload:     []byte(`{"code": 1, "payload": {"grid": [[300]]}}`),
			expectedErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			resp, res := NewRequest(test.payload).HandleValidateBoard()
			assert.Equal(t, mc.CodeValidateBoard, resp.Code)

			if test.expectedErr {
				require.NotNil(t, resp.Error)
				assert.Nil(t, res)
				return
			}

			require.Nil(t, resp.Error)
			require.NotNil(t, res)
			assert.Equal(t, test.expectedValid, res.Valid)
			assert.Equal(t, test.expectedValid, resp.Payload.Valid)
			assert.NotEmpty(t, resp.Payload.RequestID)

			if test.expectedValid {
				assert.Equal(t, test.expectedFleet, resp.Payload.Fleet)
			} else {
				assert.NotEmpty(t, resp.Payload.Reason)
			}
		})
	}
}

func TestValidateBoardSegmentsOnTheWire(t *testing.T) {
	payload := mustMarshal(t, validateMsg(mc.ReqValidateBoard{Grid: mb.Grid{{1, 1}, {0, 0}}, Fleet: mb.Fleet{2: 1}}))

	resp, _ := NewRequest(payload).HandleValidateBoard()
	require.Nil(t, resp.Error)

	data := mustMarshal(t, resp)
	assert.Contains(t, string(data), `"orientation":"horizontal"`)
}

func TestHandleFleetPresets(t *testing.T) {
	resp := NewRequest().HandleFleetPresets()
	assert.Equal(t, mc.CodeFleetPresets, resp.Code)
	require.Len(t, resp.Payload.Presets, 4)
	assert.Equal(t, mb.FleetPresetClassic, resp.Payload.Presets[0].Name)
	assert.Equal(t, mb.DefaultFleet(), resp.Payload.Presets[0].Fleet)
}
