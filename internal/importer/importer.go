// Package importer pulls competition results from the swimming federation
// results site and folds them into the athletes' personal and club records.
package importer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	"swimtrack/training-tracker/internal/domain"
	"swimtrack/training-tracker/internal/repository/selector"
	"swimtrack/training-tracker/internal/service"
)

// ErrNoFederationID rejects imports for athletes without a federation id.
var ErrNoFederationID = errors.New("athlete has no federation id")

// Performance is one competition swim as reported by the federation.
type Performance struct {
	Event   string  `json:"event"`
	Pool    string  `json:"pool"` // "25m" or "50m"
	Seconds float64 `json:"seconds"`
	Date    string  `json:"date"` // ISO date
}

// ImportResult sums up one import pass.
type ImportResult struct {
	TotalFound     int `json:"total_found"`
	NewImported    int `json:"new_imported"`
	AlreadyExisted int `json:"already_existed"`
}

// Client fetches federation performances over HTTP and stores the ones that
// beat the athlete's known bests.
type Client struct {
	baseURL    string
	httpClient *http.Client
	sel        *selector.Selector
	records    service.RecordsService
	log        *logrus.Entry
}

// New creates a federation import client.
func New(baseURL string, timeout time.Duration, sel *selector.Selector, records service.RecordsService) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		sel:        sel,
		records:    records,
		log:        logrus.WithField("component", "importer"),
	}
}

// FetchPerformances retrieves every published swim for a federation id.
func (c *Client) FetchPerformances(ctx context.Context, federationID string) ([]Performance, error) {
	endpoint := fmt.Sprintf("%s/performances?iuf=%s", c.baseURL, url.QueryEscape(federationID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("federation request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("federation responded %d: %s", resp.StatusCode, body)
	}

	var performances []Performance
	if err := json.NewDecoder(resp.Body).Decode(&performances); err != nil {
		return nil, fmt.Errorf("decode federation response: %w", err)
	}
	return performances, nil
}

// ImportAthlete fetches the athlete's federation results and saves each one
// through the records service, which keeps only improvements. Malformed
// entries are skipped, not fatal.
func (c *Client) ImportAthlete(ctx context.Context, athleteID int64) (*ImportResult, error) {
	user, err := c.sel.Provider().Users().GetByID(ctx, athleteID)
	if err != nil {
		return nil, err
	}
	if user.FederationID == "" {
		return nil, ErrNoFederationID
	}

	performances, err := c.FetchPerformances(ctx, user.FederationID)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{TotalFound: len(performances)}
	for _, perf := range performances {
		recordedAt, dateErr := time.Parse("2006-01-02", perf.Date)
		if dateErr != nil || perf.Event == "" || perf.Pool == "" || perf.Seconds <= 0 {
			c.log.Warnf("skipping malformed performance %+v for athlete %d", perf, athleteID)
			result.TotalFound--
			continue
		}
		written, err := c.records.SaveSwimRecord(ctx, &domain.SwimRecord{
			AthleteID:  athleteID,
			Event:      perf.Event,
			Pool:       perf.Pool,
			Seconds:    perf.Seconds,
			RecordedAt: recordedAt,
		})
		if err != nil {
			return nil, err
		}
		if written {
			result.NewImported++
		} else {
			result.AlreadyExisted++
		}
	}

	c.log.Infof("imported athlete %d: %d found, %d new, %d existing",
		athleteID, result.TotalFound, result.NewImported, result.AlreadyExisted)
	return result, nil
}

// RecalculateClubRecords rebuilds the club record table from every athlete's
// personal bests, keeping the fastest time per event and pool.
func (c *Client) RecalculateClubRecords(ctx context.Context) error {
	provider := c.sel.Provider()
	users, err := provider.Users().List(ctx)
	if err != nil {
		return err
	}

	type key struct{ event, pool string }
	best := make(map[key]domain.ClubRecord)
	var order []key

	for i := range users {
		user := &users[i]
		records, err := provider.Records().ListSwimRecords(ctx, user.ID)
		if err != nil {
			return err
		}
		for _, record := range records {
			k := key{record.Event, record.Pool}
			current, ok := best[k]
			if !ok {
				order = append(order, k)
			}
			if !ok || record.Seconds < current.Seconds {
				best[k] = domain.ClubRecord{
					Event:       record.Event,
					Pool:        record.Pool,
					AthleteID:   user.ID,
					AthleteName: user.Name,
					Seconds:     record.Seconds,
					RecordedAt:  record.RecordedAt,
				}
			}
		}
	}

	clubRecords := make([]domain.ClubRecord, 0, len(order))
	for _, k := range order {
		clubRecords = append(clubRecords, best[k])
	}
	return c.records.ReplaceClubRecords(ctx, clubRecords)
}
