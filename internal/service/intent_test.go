package service

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectWeatherIntent(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		wantCity string
		wantOK   bool
	}{
		{
			name:     "locative suffix with Turkish capital I",
			message:  "İstanbul'da hava kaç derece?",
			wantCity: "istanbul",
			wantOK:   true,
		},
		{
			name:     "bare city name scan",
			message:  "ankara hava durumu nasıl",
			wantCity: "ankara",
			wantOK:   true,
		},
		{
			name:     "locative suffix on less common city",
			message:  "Çorum'da sıcaklık nedir",
			wantCity: "çorum",
			wantOK:   true,
		},
		{
			name:     "weather question without a city",
			message:  "hava nasıl bugün",
			wantCity: "",
			wantOK:   true,
		},
		{
			name:    "no weather keywords",
			message: "bugün moralim kötü",
			wantOK:  false,
		},
		{
			name:    "weather keyword without question keyword",
			message: "hava çok güzel bugün istanbul",
			wantOK:  false,
		},
		{
			name:    "question keyword without weather keyword",
			message: "saat kaç",
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			city, ok := DetectWeatherIntent(tt.message)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantCity, city)
		})
	}
}

// Detection runs on gin's per-request goroutines, so the Turkish case
// folding must not share mutable state. Run with -race.
func TestDetectWeatherIntentConcurrent(t *testing.T) {
	messages := []struct {
		text string
		city string
	}{
		{"İstanbul'da hava kaç derece?", "istanbul"},
		{"ankara hava durumu nasıl", "ankara"},
		{"İzmİr'de sıcaklık nedir", "izmir"},
		{"Trabzon'da hava nasıl", "trabzon"},
	}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		m := messages[i%len(messages)]
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				city, ok := DetectWeatherIntent(m.text)
				assert.True(t, ok)
				assert.Equal(t, m.city, city)
			}
		}()
	}
	wg.Wait()
}
