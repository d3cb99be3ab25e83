package api

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sqlc-dev/pqtype"
	"go.uber.org/zap"

	"github.com/saeidalz13/battleship-validator/db/sqlc"
	mc "github.com/saeidalz13/battleship-validator/models/connection"
)

// A 100x100 board of single digits is well under this
const maxMessageSize int64 = 1 << 16

var upgrader = websocket.Upgrader{
	// good average time since this is not a high-latency operation such as video streaming
	HandshakeTimeout: time.Second * 5,

	ReadBufferSize:  2048,
	WriteBufferSize: 2048,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type RequestProcessor struct {
	sessionManager mc.SessionManager
	dbManager      sqlc.DbManager
	ipnet          net.IPNet
}

func NewRequestProcessor(sessionManager mc.SessionManager, dbManager sqlc.DbManager) RequestProcessor {
	return RequestProcessor{
		sessionManager: sessionManager,
		dbManager:      dbManager,
		ipnet:          findServerIpNet(),
	}
}

// Analytics are keyed by the first non-loopback IPv4 address of
// the host. Falls back to 127.0.0.1 on hosts without one.
func findServerIpNet() net.IPNet {
	fallback := net.IPNet{IP: net.IPv4(127, 0, 0, 1).To4(), Mask: net.CIDRMask(32, 32)}

	ifaces, err := net.Interfaces()
	if err != nil {
		zap.S().Warnf("failed to list interfaces, using loopback: %s", err)
		return fallback
	}

	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}

		for _, addr := range addrs {
			ipnet, ok := addr.(*net.IPNet)
			if !ok {
				continue
			}
			if ip4 := ipnet.IP.To4(); ip4 != nil && !ip4.IsLoopback() {
				return net.IPNet{IP: ip4, Mask: net.CIDRMask(32, 32)}
			}
		}
	}

	zap.S().Warn("no non-loopback ipv4 address found, using loopback")
	return fallback
}

func (rp RequestProcessor) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		zap.S().Warnf("could not upgrade connection: %s", err)
		return
	}
	conn.SetReadLimit(maxMessageSize)

	zap.S().Infof("a new connection established\tremote addr: %s", conn.RemoteAddr().String())
	rp.processSessionRequests(rp.sessionManager.GenerateNewSession(conn))
}

func (rp RequestProcessor) processSessionRequests(session *mc.Session) {
	sessionsActive.Inc()

	defer func() {
		sessionsActive.Dec()
		if session.Conn() != nil {
			session.Conn().Close()
		}
		rp.sessionManager.TerminateSession(session.Id())
		zap.S().Debugf("session terminated: %s", session.Id())
	}()

	resp := mc.NewMessage[mc.RespSessionId](mc.CodeSessionID)
	resp.AddPayload(mc.RespSessionId{SessionID: session.Id()})
	if err := rp.sessionManager.WriteToSessionConn(session, resp, mc.MessageTypeJSON); err != nil {
		return
	}

	serverPqtypeInet := pqtype.Inet{IPNet: rp.ipnet, Valid: true}

sessionLoop:
	for {
		_, payload, err := rp.sessionManager.ReadFromSessionConn(session)
		if err != nil {
			break sessionLoop
		}

		code, err := rp.sessionManager.FetchCodeFromMsg(payload)
		if err != nil {
			msg := mc.NewMessage[mc.NoPayload](mc.CodeSignalAbsent)
			msg.AddError("incoming req payload must contain 'code' field", "")
			if err = rp.sessionManager.WriteToSessionConn(session, msg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}
			continue sessionLoop
		}

		switch code {

		// Verdicts are recorded before replying; a failing
		// analytics store never fails the validation.
		case mc.CodeValidateBoard:
			respMsg, res := NewRequest(payload).HandleValidateBoard()

			if res == nil {
				validationsTotal.WithLabelValues(verdictMalformed).Inc()
			} else {
				observeVerdict(res.Valid)

				ctx, cancel := context.WithTimeout(context.Background(), sqlc.QuerierCtxTimeout)
				if err := rp.dbManager.Analytics.RecordVerdict(ctx, serverPqtypeInet, res.Valid); err != nil {
					zap.S().Errorf("failed to record verdict: %s", err)
				}
				cancel()
			}

			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

		case mc.CodeFleetPresets:
			respMsg := NewRequest().HandleFleetPresets()
			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

		default:
			respInvalidSignal := mc.NewMessage[mc.NoPayload](mc.CodeInvalidSignal)
			respInvalidSignal.AddError("", "invalid code in the incoming payload")
			if err := rp.sessionManager.WriteToSessionConn(session, respInvalidSignal, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}
		}
	}
}
