package recaptcha

import (
	"context"
	"errors"
	"fmt"
	"time"

	"resty.dev/v3"
)

const (
	// DefaultURL is the hosted verification endpoint.
	DefaultURL = "https://www.google.com/recaptcha/api/siteverify"

	// MinScore is the human-likelihood score a submission must reach.
	MinScore = 0.5
)

var (
	ErrRejected      = errors.New("recaptcha: verification failed")
	ErrLowScore      = errors.New("recaptcha: score too low")
	ErrRequestFailed = errors.New("recaptcha: verification request failed")
)

type Verifier struct {
	http   *resty.Client
	url    string
	secret string
}

func New(secret string) *Verifier {
	return NewWithURL(DefaultURL, secret)
}

func NewWithURL(url, secret string) *Verifier {
	client := resty.New().SetTimeout(10 * time.Second)
	return &Verifier{http: client, url: url, secret: secret}
}

type verifyResponse struct {
	Success     bool     `json:"success"`
	Score       float64  `json:"score"`
	ChallengeTS string   `json:"challenge_ts"`
	Hostname    string   `json:"hostname"`
	ErrorCodes  []string `json:"error-codes"`
}

// Verify posts the client token with the server-held secret and interprets
// the score. The returned score is valid even when the error is ErrLowScore.
func (v *Verifier) Verify(ctx context.Context, token string) (float64, error) {
	var result verifyResponse
	resp, err := v.http.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"secret":   v.secret,
			"response": token,
		}).
		SetResult(&result).
		Post(v.url)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	if resp.IsError() {
		return 0, fmt.Errorf("%w: http %d", ErrRequestFailed, resp.StatusCode())
	}

	if !result.Success {
		return result.Score, fmt.Errorf("%w: %v", ErrRejected, result.ErrorCodes)
	}
	if result.Score < MinScore {
		return result.Score, fmt.Errorf("%w: %.2f", ErrLowScore, result.Score)
	}
	return result.Score, nil
}
