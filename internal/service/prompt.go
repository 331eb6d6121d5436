package service

import (
	"fmt"
	"strings"

	"github.com/fahrielsara/portfolio-backend/internal/models"
)

// Placeholders used when site content is missing, so the prompt never
// contains a blank interpolation.
const (
	placeholderMissing   = "belirtilmemiş"
	placeholderEmptyList = "Henüz eklenmemiş."
)

// orMissing substitutes the scalar placeholder for empty values.
func orMissing(v string) string {
	if strings.TrimSpace(v) == "" {
		return placeholderMissing
	}
	return v
}

// BuildSystemPrompt renders the persona instructions for the chat assistant
// from the live site content. Every interpolated field is defaulted, so the
// result is safe to send regardless of how sparse the stored document is.
func BuildSystemPrompt(content models.SiteContent) string {
	var education strings.Builder
	for _, e := range content.Bio.Education {
		fmt.Fprintf(&education, "- %s: %s (%s)\n", orMissing(e.School), orMissing(e.Degree), orMissing(e.Year))
	}
	educationText := strings.TrimRight(education.String(), "\n")
	if educationText == "" {
		educationText = placeholderEmptyList
	}

	var services strings.Builder
	for _, s := range content.Services {
		fmt.Fprintf(&services, "- %s: %s (%s)\n", orMissing(s.Title), orMissing(s.Short), orMissing(s.Desc))
	}
	servicesText := strings.TrimRight(services.String(), "\n")
	if servicesText == "" {
		servicesText = placeholderEmptyList
	}

	var socials strings.Builder
	for _, s := range content.Socials {
		if !s.Show {
			continue
		}
		fmt.Fprintf(&socials, "- %s: %s\n", orMissing(s.Platform), orMissing(s.URL))
	}
	socialsText := strings.TrimRight(socials.String(), "\n")
	if socialsText == "" {
		socialsText = placeholderEmptyList
	}

	return fmt.Sprintf(`Sen Fahrielsara adında, hem bu web sitesinin asistanı hem de geniş bilgiye sahip yardımsever bir yapay zeka asistanısın.

Web sitesi sahibi hakkında bilgiler:
İsim: %s
Ünvan: %s
Konum: %s
Hakkında: %s
Misyon: %s

Eğitim:
%s

Hizmetler:
%s

Sosyal medya:
%s

Görevlerin:
1. Site sahibi hakkında sorulan sorulara yukarıdaki bilgilere dayanarak cevap ver. Ziyaretçiyle konuşuyorsun, site sahibiyle değil; ziyaretçiye asla site sahibiymiş gibi hitap etme.
2. KULLANICININ SORDUĞU DİĞER TÜM KONULARDA (Genel kültür, bilim, tarih, kodlama, günlük sohbet vb.) onlara yardımcı ol ve sorularını cevapla. Sadece site ile sınırlı kalma.

Tarzın: Her zaman nazik, profesyonel, zeki ve yardımsever ol. Türkçe konuş. Yeri geldiğinde 🤖, 🙂, ✨ gibi emojiler kullanabilirsin.
Eğer hava durumu sorulursa ve elinde veri yoksa, "Hangi şehir için öğrenmek istersin?" diye sor.`,
		orMissing(content.Profile.Name),
		orMissing(content.Profile.Title),
		orMissing(content.Profile.Location),
		orMissing(content.Bio.About),
		orMissing(content.Bio.Mission),
		educationText,
		servicesText,
		socialsText,
	)
}

// BuildWeatherNote renders the bracketed system note prepended to the user
// message when weather enrichment fires.
func BuildWeatherNote(city string, report *WeatherReport) string {
	return fmt.Sprintf("(Sistem Bilgisi: Kullanıcı %s için hava durumu sordu. Şu anki veriler: %d°C, %s, Nem: %%%d. Bu bilgiyi kullanarak kullanıcıya nazikçe cevap ver.)",
		city, report.Temp, report.Description, report.Humidity)
}
