package importer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swimtrack/training-tracker/internal/domain"
	"swimtrack/training-tracker/internal/repository/localmirror"
	"swimtrack/training-tracker/internal/repository/selector"
	"swimtrack/training-tracker/internal/service"
)

func newTestClient(t *testing.T, federationHandler http.HandlerFunc) (*Client, *selector.Selector) {
	t.Helper()
	store, err := localmirror.NewStore(t.TempDir())
	require.NoError(t, err)
	sel := selector.New(nil, localmirror.NewProvider(store), false, nil)
	records := service.NewRecordsService(sel, service.NewErrorLog())

	server := httptest.NewServer(federationHandler)
	t.Cleanup(server.Close)
	return New(server.URL, 0, sel, records), sel
}

func seedFederationAthlete(t *testing.T, sel *selector.Selector, federationID string) int64 {
	t.Helper()
	id, err := sel.Provider().Users().Create(context.Background(), &domain.User{
		Name:         "Léa",
		Email:        "lea@club.fr",
		Role:         domain.RoleAthlete,
		FederationID: federationID,
	})
	require.NoError(t, err)
	return id
}

func TestImportAthlete(t *testing.T) {
	ctx := context.Background()
	client, sel := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "FR123", r.URL.Query().Get("iuf"))
		json.NewEncoder(w).Encode([]Performance{
			{Event: "100 NL", Pool: "25m", Seconds: 62.5, Date: "2024-02-10"},
			{Event: "100 NL", Pool: "25m", Seconds: 63.0, Date: "2024-01-10"}, // slower, already covered
			{Event: "50 Pap", Pool: "50m", Seconds: 31.2, Date: "2024-02-11"},
			{Event: "", Pool: "25m", Seconds: 30.0, Date: "2024-02-12"}, // malformed, skipped
		})
	})

	athleteID := seedFederationAthlete(t, sel, "FR123")
	result, err := client.ImportAthlete(ctx, athleteID)
	require.NoError(t, err)
	assert.Equal(t, 3, result.TotalFound)
	assert.Equal(t, 2, result.NewImported)
	assert.Equal(t, 1, result.AlreadyExisted)

	records, err := sel.Provider().Records().ListSwimRecords(ctx, athleteID)
	require.NoError(t, err)
	assert.Len(t, records, 2)

	// a re-import finds nothing new
	result, err = client.ImportAthlete(ctx, athleteID)
	require.NoError(t, err)
	assert.Equal(t, 0, result.NewImported)
	assert.Equal(t, 3, result.AlreadyExisted)
}

func TestImportAthleteWithoutFederationID(t *testing.T) {
	client, sel := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	athleteID := seedFederationAthlete(t, sel, "")
	_, err := client.ImportAthlete(context.Background(), athleteID)
	assert.ErrorIs(t, err, ErrNoFederationID)
}

func TestImportAthleteFederationDown(t *testing.T) {
	client, sel := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "maintenance", http.StatusServiceUnavailable)
	})
	athleteID := seedFederationAthlete(t, sel, "FR123")
	_, err := client.ImportAthlete(context.Background(), athleteID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestRecalculateClubRecords(t *testing.T) {
	ctx := context.Background()
	client, sel := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})

	leaID, err := sel.Provider().Users().Create(ctx, &domain.User{Name: "Léa", Email: "lea@club.fr", Role: domain.RoleAthlete})
	require.NoError(t, err)
	tomID, err := sel.Provider().Users().Create(ctx, &domain.User{Name: "Tom", Email: "tom@club.fr", Role: domain.RoleAthlete})
	require.NoError(t, err)

	records := sel.Provider().Records()
	require.NoError(t, records.UpsertSwimRecord(ctx, &domain.SwimRecord{AthleteID: leaID, Event: "100 NL", Pool: "25m", Seconds: 62.5}))
	require.NoError(t, records.UpsertSwimRecord(ctx, &domain.SwimRecord{AthleteID: tomID, Event: "100 NL", Pool: "25m", Seconds: 61.9}))
	require.NoError(t, records.UpsertSwimRecord(ctx, &domain.SwimRecord{AthleteID: leaID, Event: "50 Pap", Pool: "50m", Seconds: 33.0}))

	require.NoError(t, client.RecalculateClubRecords(ctx))

	clubRecords, err := records.ListClubRecords(ctx)
	require.NoError(t, err)
	require.Len(t, clubRecords, 2)

	byEvent := map[string]domain.ClubRecord{}
	for _, r := range clubRecords {
		byEvent[r.Event] = r
	}
	assert.Equal(t, "Tom", byEvent["100 NL"].AthleteName)
	assert.Equal(t, 61.9, byEvent["100 NL"].Seconds)
	assert.Equal(t, "Léa", byEvent["50 Pap"].AthleteName)
}
