package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/fahrielsara/portfolio-backend/internal/models"
)

const (
	contentCacheKey   = "site:content"
	contentCacheTTL   = 5 * time.Minute
	contentPubSubName = "site:content:updates"
)

// DefaultSiteContent is served (and never persisted) when no content
// document has been saved yet, so the site always renders something.
func DefaultSiteContent() models.SiteContent {
	return models.SiteContent{
		Profile: models.Profile{
			Name:        "[Ad Soyad]",
			Title:       "Creative Developer",
			Location:    "İstanbul, Turkey",
			Image:       "https://images.unsplash.com/photo-1519085360753-af0119f7cbe7?q=80&w=1000&auto=format&fit=crop",
			Quote:       "Tasarım sadece nasıl göründüğü değil, nasıl çalıştığıdır.",
			QuoteAuthor: "Steve Jobs",
		},
		Bio: models.Bio{
			About:     "Merhaba, ben [Adınız]. Teknoloji ve tasarımın kesişim noktasında, kullanıcı deneyimini merkeze alan dijital ürünler geliştiriyorum.",
			Mission:   "Yazılım dünyasına olan merakım çocukluk yıllarıma dayanıyor. Bugün, modern web teknolojileri ile çözümler üretiyor ve hikayesi olan tasarımlar yapıyorum.",
			Education: []models.EducationEntry{},
		},
		Services: []models.Service{
			{ID: 1, Icon: models.IconCode, Title: "Web Geliştirme", Short: "Modern ve hızlı web siteleri.", Desc: "React, Next.js ve modern frontend teknolojileri kullanarak, SEO uyumlu, hızlı açılan ve güvenli web siteleri geliştiriyorum."},
			{ID: 2, Icon: models.IconBrush, Title: "UI/UX Tasarım", Short: "Kullanıcı dostu arayüzler.", Desc: "Kullanıcı deneyimini merkeze alan, estetik ve fonksiyonel arayüz tasarımları. Figma kullanarak prototipleme."},
			{ID: 3, Icon: models.IconMobile, Title: "Mobil Uygulama", Short: "iOS ve Android uyumlu çözümler.", Desc: "React Native teknolojisi ile tek kod tabanından hem iOS hem Android için native performansında çalışan mobil uygulamalar."},
			{ID: 4, Icon: models.IconSearch, Title: "SEO Optimizasyon", Short: "Arama motorlarında üst sıralar.", Desc: "Sitenizin Google ve diğer arama motorlarında üst sıralarda yer alması için teknik SEO, içerik optimizasyonu ve performans iyileştirmeleri."},
		},
		Socials: []models.Social{
			{ID: 1, Platform: "Instagram", URL: "https://instagram.com", Icon: models.IconInstagram, Color: "#E1306C", Show: true},
			{ID: 3, Platform: "LinkedIn", URL: "https://linkedin.com", Icon: models.IconLinkedIn, Color: "#0077B5", Show: true},
			{ID: 4, Platform: "GitHub", URL: "https://github.com", Icon: models.IconGitHub, Color: "#333", Show: true},
			{ID: 5, Platform: "Email", URL: "mailto:hello@example.com", Icon: models.IconEnvelope, Color: "#EA4335", Show: true},
		},
	}
}

// ContentService manages the single site-content document with a Redis
// read-through cache. Saves are broadcast over a pub/sub channel so watch
// connections on every instance see the update.
type ContentService struct {
	db    *gorm.DB
	redis *redis.Client
}

// NewContentService creates a new ContentService instance
func NewContentService(db *gorm.DB, redisClient *redis.Client) *ContentService {
	return &ContentService{db: db, redis: redisClient}
}

// Get returns the current site content, substituting the default document
// when nothing has been saved yet.
func (s *ContentService) Get(ctx context.Context) (models.SiteContent, error) {
	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, contentCacheKey).Bytes(); err == nil {
			var content models.SiteContent
			if err := json.Unmarshal(cached, &content); err == nil {
				return content, nil
			}
			// Corrupt cache entry, fall through to the database.
			log.Printf("[Content] Discarding unreadable cache entry")
		}
	}

	var record models.SiteContentRecord
	err := s.db.WithContext(ctx).First(&record, "key = ?", models.SiteContentKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return DefaultSiteContent(), nil
	}
	if err != nil {
		return models.SiteContent{}, fmt.Errorf("failed to load site content: %w", err)
	}

	s.cache(ctx, record.Document)
	return record.Document, nil
}

// Set replaces the site content document, refreshes the cache and notifies
// subscribers.
func (s *ContentService) Set(ctx context.Context, content models.SiteContent) error {
	for _, svc := range content.Services {
		if !svc.Icon.Valid() {
			return fmt.Errorf("unknown service icon %q", svc.Icon)
		}
	}
	for _, social := range content.Socials {
		if !social.Icon.Valid() {
			return fmt.Errorf("unknown social icon %q", social.Icon)
		}
	}

	record := models.SiteContentRecord{
		Key:      models.SiteContentKey,
		Document: content,
	}
	if err := s.db.WithContext(ctx).Save(&record).Error; err != nil {
		return fmt.Errorf("failed to save site content: %w", err)
	}

	s.cache(ctx, content)

	if s.redis != nil {
		payload, err := json.Marshal(content)
		if err == nil {
			if err := s.redis.Publish(ctx, contentPubSubName, payload).Err(); err != nil {
				log.Printf("[Content] Failed to publish update: %v", err)
			}
		}
	}
	return nil
}

// Subscribe opens a pub/sub subscription for content updates. The caller
// owns the returned subscription and must Close it.
func (s *ContentService) Subscribe(ctx context.Context) *redis.PubSub {
	return s.redis.Subscribe(ctx, contentPubSubName)
}

func (s *ContentService) cache(ctx context.Context, content models.SiteContent) {
	if s.redis == nil {
		return
	}
	payload, err := json.Marshal(content)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, contentCacheKey, payload, contentCacheTTL).Err(); err != nil {
		log.Printf("[Content] Failed to cache content: %v", err)
	}
}
