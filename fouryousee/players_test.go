package fouryousee

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoHandler(w http.ResponseWriter, r *http.Request) {
	body := map[string]any{}
	_ = json.NewDecoder(r.Body).Decode(&body)
	body["id"] = 1
	writeJSON(w, http.StatusCreated, body)
}

func weekPlaylists(id int) map[string]int {
	days := make(map[string]int, 7)
	for _, d := range []string{"0", "1", "2", "3", "4", "5", "6"} {
		days[d] = id
	}
	return days
}

func TestAddPlayer(t *testing.T) {
	client, rec := newTestClient(t, echoHandler)

	longName := strings.Repeat("p", 60)
	_, err := client.AddPlayer(context.Background(), PlayerInput{
		Name:      longName,
		Platform:  PlatformAndroid,
		Playlists: weekPlaylists(12),
		Audios:    map[string]int{"0": 30},
	})
	require.NoError(t, err)

	req := rec.last()
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/players/", req.Path)

	body := decodeBody(t, req.Body)
	name, _ := body["name"].(string)
	assert.Len(t, name, 49)
	assert.True(t, strings.HasSuffix(name, "..."))
	assert.Equal(t, float64(1), body["group"], "group defaults to 1")
	assert.Equal(t, "ANDROID", body["platform"])
	assert.Len(t, body["playlists"], 7)
}

func TestAddPlayerValidation(t *testing.T) {
	sixDays := weekPlaylists(1)
	delete(sixDays, "6")
	badDay := weekPlaylists(1)
	delete(badDay, "6")
	badDay["7"] = 1

	tests := []struct {
		name      string
		input     PlayerInput
		wantField string
		wantMsg   string
	}{
		{
			name:      "missing name",
			input:     PlayerInput{},
			wantField: "name",
			wantMsg:   "missing 'name' field",
		},
		{
			name:      "unknown platform",
			input:     PlayerInput{Name: "Lobby", Platform: "IOS"},
			wantField: "platform",
			wantMsg:   "must be one of: SAMSUNG WINDOWS ANDROID 4YOUSEE_PLAYER LG",
		},
		{
			name:      "playlists missing a weekday",
			input:     PlayerInput{Name: "Lobby", Playlists: sixDays},
			wantField: "playlists",
		},
		{
			name:      "playlists with an unknown weekday",
			input:     PlayerInput{Name: "Lobby", Playlists: badDay},
			wantField: "playlists",
		},
		{
			name:      "audio keyed wrong",
			input:     PlayerInput{Name: "Lobby", Audios: map[string]int{"1": 4}},
			wantField: "audios",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, rec := newTestClient(t, echoHandler)

			_, err := client.AddPlayer(context.Background(), tt.input)
			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.True(t, strings.HasPrefix(validationErr.Field, tt.wantField), "field %s", validationErr.Field)
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
			assert.Zero(t, rec.count())
		})
	}
}

var storedPlayer = map[string]any{
	"id":          7,
	"name":        "Lobby screen",
	"description": "Main entrance",
	"group":       map[string]any{"id": 2, "name": "Stores"},
	"platform":    "SAMSUNG",
	"playlists": map[string]any{
		"1": map[string]any{"id": 11, "name": "Monday"},
		"0": map[string]any{"id": 10, "name": "Sunday"},
		"2": map[string]any{"id": 12},
		"3": map[string]any{"id": 13},
		"4": map[string]any{"id": 14},
		"5": map[string]any{"id": 15},
		"6": map[string]any{"id": 16},
	},
	"audios":               map[string]any{},
	"lastContactInMinutes": 3,
}

const storedPlayerBrief = `{
	"name": "Lobby screen",
	"description": "Main entrance",
	"group": 2,
	"platform": "SAMSUNG",
	"playlists": {"0": 10, "1": 11, "2": 12, "3": 13, "4": 14, "5": 15, "6": 16},
	"audios": {}
}`

func TestEditPlayer(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			echoHandler(w, r)
			return
		}
		writeJSON(w, http.StatusOK, storedPlayer)
	}

	t.Run("no changes resubmits the current player", func(t *testing.T) {
		client, rec := newTestClient(t, handler)

		_, err := client.EditPlayer(context.Background(), "7", PlayerUpdate{})
		require.NoError(t, err)

		requests := rec.all()
		require.Len(t, requests, 2)
		assert.Equal(t, "/players/7", requests[0].Path)
		assert.Equal(t, http.MethodPut, requests[1].Method)
		assert.Equal(t, "/players/7", requests[1].Path)
		assert.JSONEq(t, storedPlayerBrief, string(requests[1].Body))
	})

	t.Run("overrides replace projected fields", func(t *testing.T) {
		client, rec := newTestClient(t, handler)

		_, err := client.EditPlayer(context.Background(), "7", PlayerUpdate{
			Name:   String(strings.Repeat("n", 51)),
			Group:  Int(5),
			Audios: map[string]int{"0": 40},
		})
		require.NoError(t, err)

		body := decodeBody(t, rec.last().Body)
		assert.Equal(t, strings.Repeat("n", 46)+"...", body["name"])
		assert.Equal(t, float64(5), body["group"])
		assert.Equal(t, map[string]any{"0": float64(40)}, body["audios"])
		assert.Equal(t, "Main entrance", body["description"])
	})

	t.Run("invalid update is rejected before fetching", func(t *testing.T) {
		client, rec := newTestClient(t, handler)

		_, err := client.EditPlayer(context.Background(), "7", PlayerUpdate{Platform: String("TIZEN")})
		var validationErr *ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.Equal(t, "platform", validationErr.Field)
		assert.Zero(t, rec.count())
	})

	t.Run("missing player", func(t *testing.T) {
		client, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "Player not found"})
		})

		_, err := client.EditPlayer(context.Background(), "70", PlayerUpdate{Name: String("x")})
		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, 1, rec.count(), "nothing is sent after a failed fetch")
	})
}

func TestBriefPlayer(t *testing.T) {
	t.Run("audio playlist reduced to its id", func(t *testing.T) {
		brief := briefPlayer(Record{
			"name":   "Kiosk",
			"group":  map[string]any{"id": float64(1)},
			"audios": map[string]any{"0": map[string]any{"id": float64(99), "name": "Radio"}},
		})
		assert.Equal(t, Record{"0": float64(99)}, brief["audios"])
		assert.Equal(t, float64(1), brief["group"])
	})

	t.Run("weekday list is keyed by position", func(t *testing.T) {
		brief := briefPlayer(Record{
			"playlists": []any{map[string]any{"id": float64(3)}, map[string]any{"id": float64(4)}},
		})
		assert.Equal(t, Record{"0": float64(3), "1": float64(4)}, brief["playlists"])
		assert.Equal(t, Record{}, brief["audios"])
		assert.Nil(t, brief["group"])
	})
}
