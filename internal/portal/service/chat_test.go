package service

import (
	"context"
	"errors"
	"testing"

	"github.com/psicoconecta/portal/internal/portal/chat"
	"github.com/psicoconecta/portal/internal/portal/domain"

	"github.com/stretchr/testify/require"
)

func TestChatServiceSend(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	registry := chat.NewMemoryRegistry()
	svc := &ChatService{Store: st, Registry: registry}

	patient := seedUser(t, st, domain.RolePatient, "pw")
	psych := seedUser(t, st, domain.RolePsychologist, "pw")
	otherPatient := seedUser(t, st, domain.RolePatient, "pw")

	t.Run("MissingFields", func(t *testing.T) {
		_, err := svc.Send(ctx, patient, "", "hello")
		require.ErrorIs(t, err, ErrMissingFields)

		_, err = svc.Send(ctx, patient, psych.ID, "")
		require.ErrorIs(t, err, ErrMissingFields)
	})

	t.Run("UnknownReceiver", func(t *testing.T) {
		_, err := svc.Send(ctx, patient, "nonexistent", "hello")
		require.ErrorIs(t, err, ErrUnknownReceiver)
	})

	t.Run("PatientToPatientDenied", func(t *testing.T) {
		_, err := svc.Send(ctx, patient, otherPatient.ID, "hello")
		require.ErrorIs(t, err, ErrNotAllowed)

		// Nothing persisted.
		msgs, lerr := st.Messages().ListConversation(ctx, patient.ID, otherPatient.ID)
		require.NoError(t, lerr)
		require.Empty(t, msgs)
	})

	t.Run("PersistAndFanOut", func(t *testing.T) {
		senderSess := &recordingSession{}
		receiverSess := &recordingSession{}
		bystanderSess := &recordingSession{}
		registry.Register(patient.ID, senderSess)
		registry.Register(psych.ID, receiverSess)
		registry.Register(otherPatient.ID, bystanderSess)

		m, err := svc.Send(ctx, patient, psych.ID, "hello doctor")
		require.NoError(t, err)
		require.NotEmpty(t, m.ID)
		require.Equal(t, patient.ID, m.SenderID)
		require.Equal(t, psych.ID, m.ReceiverID)
		require.False(t, m.IsRead)

		msgs, err := st.Messages().ListConversation(ctx, patient.ID, psych.ID)
		require.NoError(t, err)
		require.Len(t, msgs, 1)

		want := chat.NewMessageEvent(m)
		require.Equal(t, []any{want}, senderSess.delivered())
		require.Equal(t, []any{want}, receiverSess.delivered())
		require.Empty(t, bystanderSess.delivered(), "fan-out must reach sender and receiver only")
	})

	t.Run("OfflineReceiverStillPersisted", func(t *testing.T) {
		registry.Unregister(psych.ID)

		m, err := svc.Send(ctx, patient, psych.ID, "are you there?")
		require.NoError(t, err)

		got, err := st.Messages().ListConversation(ctx, patient.ID, psych.ID)
		require.NoError(t, err)
		require.Equal(t, m.ID, got[len(got)-1].ID)
	})

	t.Run("DeliveryFailureIsNotFatal", func(t *testing.T) {
		registry.Register(psych.ID, &recordingSession{err: errors.New("conn gone")})

		_, err := svc.Send(ctx, patient, psych.ID, "still works")
		require.NoError(t, err)
	})
}

func TestChatServiceHistory(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	registry := chat.NewMemoryRegistry()
	svc := &ChatService{Store: st, Registry: registry}

	patient := seedUser(t, st, domain.RolePatient, "pw")
	psych := seedUser(t, st, domain.RolePsychologist, "pw")
	otherPatient := seedUser(t, st, domain.RolePatient, "pw")

	_, err := svc.Send(ctx, patient, psych.ID, "first")
	require.NoError(t, err)
	_, err = svc.Send(ctx, psych, patient.ID, "second")
	require.NoError(t, err)
	_, err = svc.Send(ctx, patient, psych.ID, "third")
	require.NoError(t, err)

	t.Run("OrderedOldestFirst", func(t *testing.T) {
		msgs, err := svc.History(ctx, psych.ID, patient.ID)
		require.NoError(t, err)
		require.Len(t, msgs, 3)
		require.Equal(t, "first", msgs[0].Message)
		require.Equal(t, "second", msgs[1].Message)
		require.Equal(t, "third", msgs[2].Message)
	})

	t.Run("MarksOnlyIncomingRead", func(t *testing.T) {
		// The previous History call was by the psychologist, so the
		// patient's messages are now read and the psychologist's own
		// message is not.
		msgs, err := st.Messages().ListConversation(ctx, patient.ID, psych.ID)
		require.NoError(t, err)
		for _, m := range msgs {
			if m.SenderID == patient.ID {
				require.True(t, m.IsRead)
			} else {
				require.False(t, m.IsRead)
			}
		}
	})

	t.Run("PolicyReappliedOnRead", func(t *testing.T) {
		_, err := svc.History(ctx, patient.ID, otherPatient.ID)
		require.ErrorIs(t, err, ErrNotAllowed)
	})

	t.Run("UnknownOtherUser", func(t *testing.T) {
		_, err := svc.History(ctx, patient.ID, "nonexistent")
		require.ErrorIs(t, err, ErrUnknownReceiver)
	})
}
