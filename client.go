package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// APIClient talks to the quickcal REST API. Requests carry no
// client-side timeout; a failure is reported once and never retried.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

// fetches the full event collection, sorted by the server
func (c *APIClient) ListEvents() ([]Event, error) {
	res, err := c.httpClient.Get(fmt.Sprintf("%s/events", c.baseURL))
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, decodeAPIError(res)
	}

	var records []eventJSON
	if err := json.NewDecoder(res.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("error decoding response: %w", err)
	}

	events := make([]Event, 0, len(records))
	for _, rec := range records {
		events = append(events, rec.toEvent())
	}
	return events, nil
}

// fetches a single event by id
func (c *APIClient) GetEvent(id string) (Event, error) {
	res, err := c.httpClient.Get(fmt.Sprintf("%s/events/%s", c.baseURL, id))
	if err != nil {
		return Event{}, fmt.Errorf("error making request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return Event{}, decodeAPIError(res)
	}

	var rec eventJSON
	if err := json.NewDecoder(res.Body).Decode(&rec); err != nil {
		return Event{}, fmt.Errorf("error decoding response: %w", err)
	}
	return rec.toEvent(), nil
}

// creates a new event and returns the server record with its assigned id
func (c *APIClient) CreateEvent(draft eventDraft) (Event, error) {
	reqBody, err := json.Marshal(draft)
	if err != nil {
		return Event{}, fmt.Errorf("error encoding request: %w", err)
	}

	res, err := c.httpClient.Post(fmt.Sprintf("%s/events", c.baseURL), "application/json", bytes.NewReader(reqBody))
	if err != nil {
		return Event{}, fmt.Errorf("error making request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusCreated {
		return Event{}, decodeAPIError(res)
	}

	var rec eventJSON
	if err := json.NewDecoder(res.Body).Decode(&rec); err != nil {
		return Event{}, fmt.Errorf("error decoding response: %w", err)
	}
	return rec.toEvent(), nil
}

// sends a partial update; only non-nil patch fields travel in the body
func (c *APIClient) UpdateEvent(id string, patch eventPatch) (Event, error) {
	reqBody, err := json.Marshal(patch)
	if err != nil {
		return Event{}, fmt.Errorf("error encoding request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPut, fmt.Sprintf("%s/events/%s", c.baseURL, id), bytes.NewReader(reqBody))
	if err != nil {
		return Event{}, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return Event{}, fmt.Errorf("error making request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return Event{}, decodeAPIError(res)
	}

	var rec eventJSON
	if err := json.NewDecoder(res.Body).Decode(&rec); err != nil {
		return Event{}, fmt.Errorf("error decoding response: %w", err)
	}
	return rec.toEvent(), nil
}

// deletes an event by id
func (c *APIClient) DeleteEvent(id string) error {
	req, err := http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/events/%s", c.baseURL, id), nil)
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error making request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusNoContent {
		return decodeAPIError(res)
	}
	return nil
}

// decodeAPIError turns a non-success response into an error carrying
// the server's message when one is present.
func decodeAPIError(res *http.Response) error {
	var errRes struct {
		Error string `json:"error"`
	}
	body, err := io.ReadAll(res.Body)
	if err == nil && json.Unmarshal(body, &errRes) == nil && errRes.Error != "" {
		return fmt.Errorf("%s", errRes.Error)
	}
	return fmt.Errorf("unexpected status %s", res.Status)
}
