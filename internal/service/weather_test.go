package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeatherClientLookup(t *testing.T) {
	ctx := context.Background()

	t.Run("geocodes then fetches current conditions", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/geo/1.0/direct":
				assert.Equal(t, "çorum", r.URL.Query().Get("q"))
				w.Write([]byte(`[{"name":"Corum","lat":40.55,"lon":34.95,"local_names":{"tr":"Çorum"}}]`))
			case "/data/2.5/weather":
				assert.Equal(t, "metric", r.URL.Query().Get("units"))
				assert.Equal(t, "tr", r.URL.Query().Get("lang"))
				w.Write([]byte(`{"main":{"temp":21.6,"humidity":48},"weather":[{"description":"açık"}]}`))
			default:
				t.Errorf("unexpected path %s", r.URL.Path)
			}
		}))
		defer srv.Close()

		report, err := NewWeatherClient("test-key", srv.URL).Lookup(ctx, "çorum")

		require.NoError(t, err)
		assert.Equal(t, "Çorum", report.City)
		assert.Equal(t, 22, report.Temp)
		assert.Equal(t, "açık", report.Description)
		assert.Equal(t, 48, report.Humidity)
	})

	t.Run("falls back to geocoder name without Turkish local name", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/geo/1.0/direct":
				w.Write([]byte(`[{"name":"London","lat":51.5,"lon":-0.12}]`))
			case "/data/2.5/weather":
				w.Write([]byte(`{"main":{"temp":11.2,"humidity":80},"weather":[{"description":"yağmurlu"}]}`))
			}
		}))
		defer srv.Close()

		report, err := NewWeatherClient("test-key", srv.URL).Lookup(ctx, "london")

		require.NoError(t, err)
		assert.Equal(t, "London", report.City)
		assert.Equal(t, 11, report.Temp)
	})

	t.Run("empty geocode result is ErrCityNotFound", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[]`))
		}))
		defer srv.Close()

		_, err := NewWeatherClient("test-key", srv.URL).Lookup(ctx, "atlantis")
		assert.ErrorIs(t, err, ErrCityNotFound)
	})

	t.Run("upstream error status fails the lookup", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", http.StatusUnauthorized)
		}))
		defer srv.Close()

		_, err := NewWeatherClient("bad-key", srv.URL).Lookup(ctx, "izmir")
		assert.Error(t, err)
	})
}
