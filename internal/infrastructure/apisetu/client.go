// Package apisetu implementa la verificación de códigos IEC contra la API v3 de DGFT publicada en API Setu.
package apisetu

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/iec-registro/internal/application/ports"
	"github.com/jhoicas/iec-registro/internal/domain"
	"github.com/jhoicas/iec-registro/internal/domain/entity"
)

// Verificar en tiempo de compilación que Client implementa IECVerifier.
var _ ports.IECVerifier = (*Client)(nil)

const (
	iecPath      = "/dgft/v3/iec/"
	headerAPIKey = "X-APISETU-APIKEY"
	headerClient = "X-APISETU-CLIENTID"

	maxBodyBytes = 1 << 20

	msgVerificationFailed = "IEC verification failed"
)

// Config parámetros explícitos del cliente (no se leen variables de entorno en tiempo de llamada).
type Config struct {
	BaseURL  string // p. ej. https://apisetu.gov.in
	APIKey   string
	ClientID string
	Timeout  time.Duration
}

// Client adaptador HTTP de la autoridad de verificación IEC.
type Client struct {
	cfg        Config
	httpClient *http.Client
	log        zerolog.Logger
}

// NewClient construye el adaptador. Si httpClient es nil se crea uno con cfg.Timeout.
func NewClient(cfg Config, httpClient *http.Client, log zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &Client{cfg: cfg, httpClient: httpClient, log: log}
}

// Verify consulta el código en la autoridad: una única llamada, sin reintentos.
func (c *Client) Verify(ctx context.Context, code string) (*entity.IECCompany, error) {
	endpoint := c.cfg.BaseURL + iecPath + url.PathEscape(code)

	c.log.Info().
		Str("iec_code", code).
		Bool("has_api_key", c.cfg.APIKey != "").
		Bool("has_client_id", c.cfg.ClientID != "").
		Msg("consultando IEC en API Setu")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, verificationFailed(err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(headerAPIKey, c.cfg.APIKey)
	req.Header.Set(headerClient, c.cfg.ClientID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			err = ctx.Err()
		}
		c.log.Error().Err(err).Str("iec_code", code).Msg("llamada a API Setu fallida")
		return nil, verificationFailed(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		c.log.Error().Err(err).Str("iec_code", code).Msg("lectura de la respuesta de API Setu fallida")
		return nil, verificationFailed(fmt.Errorf("leer respuesta: %w", err))
	}

	c.log.Info().Str("iec_code", code).Int("status", resp.StatusCode).Msg("respuesta de API Setu")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := upstreamMessage(body, resp.StatusCode)
		c.log.Warn().Str("iec_code", code).Int("status", resp.StatusCode).Str("detail", msg).Msg("API Setu rechazó la verificación")
		return nil, domain.Upstream(resp.StatusCode, msg, nil)
	}

	var payload iecResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		c.log.Error().Err(err).Str("iec_code", code).Msg("respuesta de API Setu no decodificable")
		return nil, verificationFailed(fmt.Errorf("decodificar respuesta: %w", err))
	}
	if payload.IECNumber.missing() {
		return nil, domain.NotFound("Invalid IEC code. Please check and try again.")
	}

	return toCompany(code, payload, json.RawMessage(body)), nil
}

func upstreamMessage(body []byte, status int) string {
	var e errorResponse
	if err := json.Unmarshal(body, &e); err == nil {
		if e.ErrorDescription != "" {
			return e.ErrorDescription
		}
		if e.Message != "" {
			return e.Message
		}
	}
	return fmt.Sprintf("Failed to verify IEC code from external API (Status: %d)", status)
}

// verificationFailed conserva la causa en Err (para el log) y expone un mensaje fijo al llamador.
func verificationFailed(err error) *domain.Error {
	if errors.Is(err, context.DeadlineExceeded) {
		return domain.Upstream(http.StatusGatewayTimeout, msgVerificationFailed, err)
	}
	return domain.Upstream(http.StatusInternalServerError, msgVerificationFailed, err)
}
