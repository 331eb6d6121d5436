package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fahrielsara/portfolio-backend/internal/models"
	"github.com/fahrielsara/portfolio-backend/internal/testhelpers"
)

type fakeWeather struct {
	report *WeatherReport
	err    error
	calls  int
}

func (f *fakeWeather) Lookup(ctx context.Context, city string) (*WeatherReport, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.report, nil
}

func newChatTestService(t *testing.T, gen Generator, weather WeatherLookup) *ChatService {
	t.Helper()
	db := testhelpers.SetupSQLite(t)
	content := NewContentService(db, nil)
	svc := NewChatService(db, content, NewFallbackResponder(gen, true), weather)
	svc.SetMinLatency(0)
	return svc
}

func TestSetMinLatency(t *testing.T) {
	svc := newChatTestService(t, &scriptedGenerator{}, nil)
	assert.Equal(t, time.Duration(0), svc.minLatency)

	svc.SetMinLatency(defaultMinLatency)
	assert.Equal(t, defaultMinLatency, svc.minLatency)

	// A zero floor must not block the reply path.
	svc.SetMinLatency(0)
	start := time.Now()
	svc.padLatency(context.Background(), start)
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestChatServiceSessions(t *testing.T) {
	ctx := context.Background()
	svc := newChatTestService(t, &scriptedGenerator{text: "ok"}, nil)

	session, err := svc.CreateSession(ctx, "Linux x86_64")
	require.NoError(t, err)
	require.Len(t, session.Turns, 1)
	assert.Equal(t, models.RoleAssistant, session.Turns[0].Role)
	assert.Equal(t, greetingText, session.Turns[0].Text)
	assert.Equal(t, "Linux x86_64", session.ClientTag)

	loaded, err := svc.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.Turns, loaded.Turns)

	sessions, err := svc.ListSessions(ctx)
	require.NoError(t, err)
	assert.Len(t, sessions, 1)

	require.NoError(t, svc.DeleteSession(ctx, session.ID))
	assert.ErrorIs(t, svc.DeleteSession(ctx, session.ID), ErrSessionNotFound)
	_, err = svc.GetSession(ctx, session.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestChatServiceSendMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("appends user and assistant turns in order", func(t *testing.T) {
		gen := &scriptedGenerator{text: "cevabım bu"}
		svc := newChatTestService(t, gen, nil)

		session, err := svc.CreateSession(ctx, "")
		require.NoError(t, err)
		before := session.LastMessageAt

		updated, reply, err := svc.SendMessage(ctx, session.ID, "merhaba")
		require.NoError(t, err)
		assert.Equal(t, "cevabım bu", reply)

		require.Len(t, updated.Turns, 3)
		assert.Equal(t, greetingText, updated.Turns[0].Text)
		assert.Equal(t, models.ChatTurn{Role: models.RoleUser, Text: "merhaba"}, updated.Turns[1])
		assert.Equal(t, models.ChatTurn{Role: models.RoleAssistant, Text: "cevabım bu"}, updated.Turns[2])
		assert.False(t, updated.LastMessageAt.Before(before))

		// The transcript is persisted, not just returned.
		loaded, err := svc.GetSession(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, updated.Turns, loaded.Turns)
	})

	t.Run("unknown session", func(t *testing.T) {
		svc := newChatTestService(t, &scriptedGenerator{text: "ok"}, nil)
		_, _, err := svc.SendMessage(ctx, uuid.New(), "merhaba")
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("bounds upstream history to the window", func(t *testing.T) {
		gen := &scriptedGenerator{text: "ok"}
		svc := newChatTestService(t, gen, nil)

		session, err := svc.CreateSession(ctx, "")
		require.NoError(t, err)
		for i := 0; i < 15; i++ {
			session.Turns = append(session.Turns,
				models.ChatTurn{Role: models.RoleUser, Text: fmt.Sprintf("soru %d", i)},
				models.ChatTurn{Role: models.RoleAssistant, Text: fmt.Sprintf("cevap %d", i)},
			)
		}
		require.NoError(t, svc.db.Save(session).Error)

		_, _, err = svc.SendMessage(ctx, session.ID, "son soru")
		require.NoError(t, err)

		require.NotEmpty(t, gen.calls)
		sent := gen.calls[0].history
		// Two synthetic persona turns plus at most ten real ones.
		require.LessOrEqual(t, len(sent), historyWindow+2)
		assert.Equal(t, models.RoleUser, sent[2].Role)
	})

	t.Run("weather question discards history and injects conditions", func(t *testing.T) {
		gen := &scriptedGenerator{text: "22 derece, açık"}
		weather := &fakeWeather{report: &WeatherReport{City: "İstanbul", Temp: 22, Description: "açık", Humidity: 50}}
		svc := newChatTestService(t, gen, weather)

		session, err := svc.CreateSession(ctx, "")
		require.NoError(t, err)

		_, reply, err := svc.SendMessage(ctx, session.ID, "İstanbul'da hava kaç derece?")
		require.NoError(t, err)
		assert.Equal(t, "22 derece, açık", reply)
		assert.Equal(t, 1, weather.calls)

		require.Len(t, gen.calls, 1)
		// Only the two synthetic persona turns, no conversation context.
		assert.Len(t, gen.calls[0].history, 2)
		assert.True(t, strings.HasPrefix(gen.calls[0].message, "(Sistem Bilgisi: Kullanıcı İstanbul için hava durumu sordu."))
		assert.True(t, strings.HasSuffix(gen.calls[0].message, "İstanbul'da hava kaç derece?"))
	})

	t.Run("weather failure falls through to standard assembly", func(t *testing.T) {
		gen := &scriptedGenerator{text: "ok"}
		weather := &fakeWeather{err: errors.New("upstream down")}
		svc := newChatTestService(t, gen, weather)

		session, err := svc.CreateSession(ctx, "")
		require.NoError(t, err)

		_, reply, err := svc.SendMessage(ctx, session.ID, "ankara hava durumu nasıl")
		require.NoError(t, err)
		assert.Equal(t, "ok", reply)

		require.Len(t, gen.calls, 1)
		assert.Equal(t, "ankara hava durumu nasıl", gen.calls[0].message)
	})
}

func TestAssembleHistory(t *testing.T) {
	t.Run("drops newest turn and leading non-user turns", func(t *testing.T) {
		turns := models.ChatTurns{
			{Role: models.RoleAssistant, Text: greetingText},
			{Role: models.RoleUser, Text: "soru"},
			{Role: models.RoleAssistant, Text: "cevap"},
			{Role: models.RoleUser, Text: "yeni soru"},
		}
		history := assembleHistory(turns)
		require.Len(t, history, 2)
		assert.Equal(t, models.RoleUser, history[0].Role)
		assert.Equal(t, "soru", history[0].Text)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, assembleHistory(nil))
	})
}
