// services/bio_service.go
package services

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"digicard.pro/configs/configslog"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// BioServiceError metin üretim hataları
type BioServiceError string

func (e BioServiceError) Error() string { return string(e) }

const (
	ErrBioNotConfigured BioServiceError = "metin üretim servisi yapılandırılmamış"
	ErrBioInputMissing  BioServiceError = "isim ve meslek alanları zorunludur"
	ErrBioUnavailable   BioServiceError = "metin üretim servisi şu an kullanılamıyor"
)

// IBioService kartvizit için kısa tanıtım metni üretir. Üretim harici
// bir API'ye gider; başarısızlık editörü asla bloklamaz, çağıran hatayı
// gösterip manuel girişe devam eder.
type IBioService interface {
	GenerateBio(ctx context.Context, fullName, jobTitle, companyName string) (string, error)
}

type BioService struct {
	client   *resty.Client
	endpoint string
	apiKey   string
}

// generateContentRequest / generateContentResponse Gemini generateContent
// uç noktasının asgari gövdesi.
type generateContentRequest struct {
	Contents []generateContentPart `json:"contents"`
}

type generateContentPart struct {
	Parts []generateContentText `json:"parts"`
}

type generateContentText struct {
	Text string `json:"text"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// NewBioService BIO_API_URL ve BIO_API_KEY ortam değişkenlerinden
// yapılandırılır. URL boşsa servis kapalı sayılır.
func NewBioService() IBioService {
	client := resty.New().
		SetTimeout(15 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond).
		SetHeader("Content-Type", "application/json")

	return &BioService{
		client:   client,
		endpoint: os.Getenv("BIO_API_URL"),
		apiKey:   os.Getenv("BIO_API_KEY"),
	}
}

// NewBioServiceWithClient test için özel istemci ve uç nokta alır.
func NewBioServiceWithClient(client *resty.Client, endpoint, apiKey string) IBioService {
	return &BioService{client: client, endpoint: endpoint, apiKey: apiKey}
}

// GenerateBio isim/meslek/şirket bilgisinden en fazla 35 kelimelik,
// birinci tekil şahıs bir tanıtım metni ister ve düz metin döner.
func (s *BioService) GenerateBio(ctx context.Context, fullName, jobTitle, companyName string) (string, error) {
	if s.endpoint == "" {
		return "", ErrBioNotConfigured
	}
	fullName = strings.TrimSpace(fullName)
	jobTitle = strings.TrimSpace(jobTitle)
	if fullName == "" || jobTitle == "" {
		return "", ErrBioInputMissing
	}

	prompt := fmt.Sprintf(
		"Write a professional, friendly bio for a digital business card. Name: %s. Job title: %s.",
		fullName, jobTitle,
	)
	if companyName = strings.TrimSpace(companyName); companyName != "" {
		prompt += fmt.Sprintf(" Company: %s.", companyName)
	}
	prompt += " Maximum 35 words, first person, no hashtags, no quotes."

	reqBody := generateContentRequest{
		Contents: []generateContentPart{{Parts: []generateContentText{{Text: prompt}}}},
	}

	// SetError olmadan resty hata durumlarında gövdeyi çözmez;
	// upstream mesajı ancak böyle okunabiliyor.
	var result generateContentResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParam("key", s.apiKey).
		SetBody(reqBody).
		SetResult(&result).
		SetError(&result).
		Post(s.endpoint)
	if err != nil {
		configslog.Log.Warn("Bio üretim isteği başarısız", zap.Error(err))
		return "", ErrBioUnavailable
	}
	if resp.IsError() {
		msg := resp.Status()
		if result.Error != nil && result.Error.Message != "" {
			msg = result.Error.Message
		}
		configslog.Log.Warn("Bio üretim servisi hata döndü", zap.Int("status", resp.StatusCode()), zap.String("message", msg))
		return "", fmt.Errorf("%w: %s", ErrBioUnavailable, msg)
	}

	for _, cand := range result.Candidates {
		for _, part := range cand.Content.Parts {
			if text := strings.TrimSpace(part.Text); text != "" {
				return text, nil
			}
		}
	}
	configslog.Log.Warn("Bio üretim yanıtı boş geldi")
	return "", ErrBioUnavailable
}

var _ IBioService = (*BioService)(nil)
