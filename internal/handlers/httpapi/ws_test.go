package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/huntlabs/treasurehunt/internal/eventbus"
	"github.com/huntlabs/treasurehunt/internal/models"
)

func (s *HandlerTestSuite) wsURL(query string) string {
	return "ws" + strings.TrimPrefix(s.server.URL, "http") + "/ws" + query
}

func (s *HandlerTestSuite) readEvent(conn *websocket.Conn) eventbus.Event {
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var event eventbus.Event
	s.Require().NoError(conn.ReadJSON(&event))
	return event
}

func (s *HandlerTestSuite) TestWSReceivesBroadcastEvents() {
	conn, _, err := websocket.DefaultDialer.Dial(s.wsURL(""), nil)
	s.Require().NoError(err)
	defer conn.Close()

	// Give the subscription a moment to register before publishing
	time.Sleep(50 * time.Millisecond)

	s.eventBus.Publish(eventbus.RoomBroadcast, eventbus.Event{
		Type: eventbus.EventTypeGameStateUpdate,
		Payload: eventbus.GameStateUpdatePayload{
			ActiveRound: models.RoundOne,
		},
	})

	event := s.readEvent(conn)
	s.Equal(eventbus.EventTypeGameStateUpdate, event.Type)
}

func (s *HandlerTestSuite) TestWSAdminRoomRequiresToken() {
	_, resp, err := websocket.DefaultDialer.Dial(s.wsURL("?room=admin"), nil)
	s.Require().Error(err)
	s.Require().NotNil(resp)
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func (s *HandlerTestSuite) TestWSAdminRoomReceivesAdminEvents() {
	conn, _, err := websocket.DefaultDialer.Dial(s.wsURL("?room=admin&token="+s.adminToken()), nil)
	s.Require().NoError(err)
	defer conn.Close()

	time.Sleep(50 * time.Millisecond)

	s.eventBus.Publish(eventbus.RoomAdmin, eventbus.Event{
		Type: eventbus.EventTypePlayerUpdate,
		Payload: eventbus.PlayerUpdatePayload{
			UpdateType:  eventbus.UpdateTypeRegistration,
			Participant: s.testParticipant,
		},
	})

	event := s.readEvent(conn)
	s.Equal(eventbus.EventTypePlayerUpdate, event.Type)
}

func (s *HandlerTestSuite) TestWSBroadcastRoomDoesNotSeeAdminEvents() {
	conn, _, err := websocket.DefaultDialer.Dial(s.wsURL(""), nil)
	s.Require().NoError(err)
	defer conn.Close()

	time.Sleep(50 * time.Millisecond)

	// Registration updates stay in the admin room
	s.eventBus.Publish(eventbus.RoomAdmin, eventbus.Event{
		Type: eventbus.EventTypePlayerUpdate,
		Payload: eventbus.PlayerUpdatePayload{
			UpdateType:  eventbus.UpdateTypeRegistration,
			Participant: s.testParticipant,
		},
	})

	conn.SetReadDeadline(time.Now().Add(300 * time.Millisecond))
	var event eventbus.Event
	s.Error(conn.ReadJSON(&event))
}
