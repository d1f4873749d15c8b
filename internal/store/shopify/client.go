package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"boulangerie/internal/model"
)

// accessTokenHeader authenticates storefront requests.
const accessTokenHeader = "X-Shopify-Storefront-Access-Token"

type graphQLRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type graphQLEnvelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors"`
}

// userError is a per-field business rejection attached to a mutation result.
type userError struct {
	Field   []string `json:"field"`
	Message string   `json:"message"`
}

// rejectUserErrors folds mutation userErrors into a single rejection carrying
// the backend's messages verbatim. Partial application is never attempted.
func rejectUserErrors(operation string, errs []userError) error {
	if len(errs) == 0 {
		return nil
	}
	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		messages = append(messages, e.Message)
	}
	return model.NewRejected(operation + ": " + strings.Join(messages, "; "))
}

// query executes one GraphQL round trip and decodes the data payload into
// out. Transport failures classify as transient, GraphQL errors as business
// rejections.
func (s *Store) query(ctx context.Context, query string, variables map[string]interface{}, out interface{}) error {
	if err := s.configured(); err != nil {
		return err
	}

	body, err := json.Marshal(graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("failed to encode graphql request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build graphql request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(accessTokenHeader, s.cfg.AccessToken)

	res, err := s.client.Do(req)
	if err != nil {
		s.logger.Error().Err(err).Msg("storefront request failed")
		return model.NewTransient("shopify storefront unreachable", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		text, _ := io.ReadAll(io.LimitReader(res.Body, 2048))
		s.logger.Error().
			Int("status", res.StatusCode).
			Str("body", string(text)).
			Msg("storefront HTTP error")
		return model.NewTransient(fmt.Sprintf("shopify storefront HTTP %d", res.StatusCode), nil)
	}

	var envelope graphQLEnvelope
	if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
		return model.NewTransient("failed to decode storefront response", err)
	}

	if len(envelope.Errors) > 0 {
		messages := make([]string, 0, len(envelope.Errors))
		for _, e := range envelope.Errors {
			messages = append(messages, e.Message)
		}
		s.logger.Error().Strs("errors", messages).Msg("storefront GraphQL errors")
		return model.NewRejected(strings.Join(messages, "; "))
	}

	if envelope.Data == nil {
		return model.NewTransient("shopify storefront returned empty data", nil)
	}

	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return model.NewTransient("failed to decode storefront data", err)
	}
	return nil
}
