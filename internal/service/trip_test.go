package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mehak-2/packpal-app-be/internal/ai"
	"github.com/mehak-2/packpal-app-be/internal/domain"
	"github.com/mehak-2/packpal-app-be/internal/packing"
	"github.com/mehak-2/packpal-app-be/internal/repo"
	"github.com/mehak-2/packpal-app-be/internal/service"
)

// mockTripRepo is a hand-written test double for repo.TripRepo.
// Each method is a function field — set only the ones your test needs.
// This is idiomatic Go: no mock generation library required for simple cases.
type mockTripRepo struct {
	create            func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getByID           func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	list              func(ctx context.Context) ([]domain.Trip, error)
	listUpcoming      func(ctx context.Context, day time.Time) ([]domain.Trip, error)
	update            func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	updatePackingList func(ctx context.Context, id uuid.UUID, list domain.PackingList) (domain.Trip, error)
	updateWeather     func(ctx context.Context, id uuid.UUID, weather *domain.WeatherSnapshot) (domain.Trip, error)
	delete            func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.create(ctx, trip)
}
func (m *mockTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripRepo) List(ctx context.Context) ([]domain.Trip, error) {
	return m.list(ctx)
}
func (m *mockTripRepo) ListUpcoming(ctx context.Context, day time.Time) ([]domain.Trip, error) {
	return m.listUpcoming(ctx, day)
}
func (m *mockTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.update(ctx, trip)
}
func (m *mockTripRepo) UpdatePackingList(ctx context.Context, id uuid.UUID, list domain.PackingList) (domain.Trip, error) {
	return m.updatePackingList(ctx, id, list)
}
func (m *mockTripRepo) UpdateWeather(ctx context.Context, id uuid.UUID, weather *domain.WeatherSnapshot) (domain.Trip, error) {
	return m.updateWeather(ctx, id, weather)
}
func (m *mockTripRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

// compile-time check: mockTripRepo must satisfy repo.TripRepo.
var _ repo.TripRepo = (*mockTripRepo)(nil)

// stubWeather returns a fixed snapshot for every destination.
type stubWeather struct {
	snapshot *domain.WeatherSnapshot
}

func (s *stubWeather) Fetch(_ context.Context, _, _ string) *domain.WeatherSnapshot {
	return s.snapshot
}

// stubDestinations returns a fixed destination card (or nil).
type stubDestinations struct {
	info *domain.DestinationInfo
}

func (s *stubDestinations) CountryInfo(_ context.Context, _ string) *domain.DestinationInfo {
	return s.info
}

// stubGenerator is a test double for the AI adapter.
type stubGenerator struct {
	result      ai.Result
	err         error
	suggestions []domain.Suggestion
}

func (s *stubGenerator) GenerateList(_ context.Context, _ domain.TripAttributes) (ai.Result, error) {
	return s.result, s.err
}
func (s *stubGenerator) Suggest(_ context.Context, _ domain.TripAttributes) []domain.Suggestion {
	return s.suggestions
}

var _ service.ListGenerator = (*stubGenerator)(nil)

// ---- helpers ---------------------------------------------------------------

func validTrip() domain.Trip {
	return domain.Trip{
		Destination: "Tokyo",
		Country:     "Japan",
		StartDate:   time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 10, 6, 0, 0, 0, 0, time.UTC),
		Activities:  []string{"sightseeing"},
	}
}

func mildWeather() *domain.WeatherSnapshot {
	return &domain.WeatherSnapshot{
		Temperature: 18,
		Condition:   "Clear",
		Description: "clear sky",
		Humidity:    60,
		WindSpeed:   5,
		Pressure:    1013,
	}
}

func newService(r repo.TripRepo) *service.TripService {
	return newServiceWith(r, &stubGenerator{})
}

func newServiceWith(r repo.TripRepo, gen service.ListGenerator) *service.TripService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return service.NewTripService(r, &stubWeather{snapshot: mildWeather()},
		&stubDestinations{}, packing.NewEngine(), gen, logger)
}

func echoRepo() *mockTripRepo {
	// A repo that echoes whatever it receives back — useful for Create/Update
	// tests that only care about validation and enrichment, not what the DB
	// returns.
	return &mockTripRepo{
		create: func(_ context.Context, t domain.Trip) (domain.Trip, error) { return t, nil },
		update: func(_ context.Context, t domain.Trip) (domain.Trip, error) { return t, nil },
	}
}

// ---- Create tests ----------------------------------------------------------

func TestTripService_Create_Valid(t *testing.T) {
	svc := newService(echoRepo())

	got, err := svc.Create(context.Background(), validTrip())

	require.NoError(t, err)
	assert.Equal(t, "Tokyo", got.Destination)
	require.NotNil(t, got.Weather, "weather should be fetched at creation time")
	assert.Equal(t, float64(18), got.Weather.Temperature)
	// The initial packing list is generated and carries all seven categories.
	assert.Len(t, got.PackingList, 7)
	assert.NotEmpty(t, got.PackingList[domain.CategoryClothing])
	assert.NotEmpty(t, got.PackingList[domain.CategoryDocuments])
}

func TestTripService_Create_MissingDestination(t *testing.T) {
	svc := newService(echoRepo())

	trip := validTrip()
	trip.Destination = "   " // whitespace-only should be treated as empty

	_, err := svc.Create(context.Background(), trip)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTripService_Create_MissingCountry(t *testing.T) {
	svc := newService(echoRepo())

	trip := validTrip()
	trip.Country = ""

	_, err := svc.Create(context.Background(), trip)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTripService_Create_MissingDates(t *testing.T) {
	svc := newService(echoRepo())

	trip := validTrip()
	trip.StartDate = time.Time{}

	_, err := svc.Create(context.Background(), trip)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTripService_Create_EndDateBeforeStartDate(t *testing.T) {
	svc := newService(echoRepo())

	trip := validTrip()
	trip.EndDate = trip.StartDate.AddDate(0, 0, -1)

	_, err := svc.Create(context.Background(), trip)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTripService_Create_SameDayTrip(t *testing.T) {
	svc := newService(echoRepo())

	trip := validTrip()
	trip.EndDate = trip.StartDate // day trip — valid

	got, err := svc.Create(context.Background(), trip)

	require.NoError(t, err)
	// A zero-day duration still yields at least one of everything.
	for _, item := range got.PackingList[domain.CategoryClothing] {
		assert.GreaterOrEqual(t, item.Quantity, 1, "quantity floor for %q", item.Name)
	}
}

func TestTripService_Create_RepoError(t *testing.T) {
	repoErr := errors.New("db exploded")
	r := &mockTripRepo{
		create: func(_ context.Context, _ domain.Trip) (domain.Trip, error) {
			return domain.Trip{}, repoErr
		},
	}
	svc := newService(r)

	_, err := svc.Create(context.Background(), validTrip())

	// The service should propagate repo errors unchanged.
	assert.ErrorIs(t, err, repoErr)
}

// ---- GetByID tests ---------------------------------------------------------

func TestTripService_GetByID_Found(t *testing.T) {
	want := validTrip()
	want.ID = uuid.New()

	r := &mockTripRepo{
		getByID: func(_ context.Context, id uuid.UUID) (domain.Trip, error) {
			return want, nil
		},
	}
	svc := newService(r)

	got, err := svc.GetByID(context.Background(), want.ID)

	require.NoError(t, err)
	assert.Equal(t, want.ID, got.ID)
}

func TestTripService_GetByID_NotFound(t *testing.T) {
	r := &mockTripRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Trip, error) {
			return domain.Trip{}, domain.ErrNotFound
		},
	}
	svc := newService(r)

	_, err := svc.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ---- List tests ------------------------------------------------------------

func TestTripService_List_All(t *testing.T) {
	trips := []domain.Trip{validTrip(), validTrip()}
	r := &mockTripRepo{
		list: func(_ context.Context) ([]domain.Trip, error) { return trips, nil },
	}
	svc := newService(r)

	got, err := svc.List(context.Background(), "")

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestTripService_List_Empty(t *testing.T) {
	r := &mockTripRepo{
		list: func(_ context.Context) ([]domain.Trip, error) { return nil, nil },
	}
	svc := newService(r)

	got, err := svc.List(context.Background(), "")

	require.NoError(t, err)
	// Should return an empty slice, not nil — callers can safely range over it.
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestTripService_List_StatusFilter(t *testing.T) {
	past := validTrip()
	past.Destination = "Rome"
	past.StartDate = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	past.EndDate = time.Date(2020, 1, 5, 0, 0, 0, 0, time.UTC)

	future := validTrip()
	future.Destination = "Oslo"
	future.StartDate = time.Now().AddDate(1, 0, 0)
	future.EndDate = future.StartDate.AddDate(0, 0, 5)

	r := &mockTripRepo{
		list: func(_ context.Context) ([]domain.Trip, error) {
			return []domain.Trip{past, future}, nil
		},
	}
	svc := newService(r)

	upcoming, err := svc.List(context.Background(), domain.TripStatusUpcoming)
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, "Oslo", upcoming[0].Destination)

	finished, err := svc.List(context.Background(), domain.TripStatusPast)
	require.NoError(t, err)
	require.Len(t, finished, 1)
	assert.Equal(t, "Rome", finished[0].Destination)
}

// ---- Update tests ----------------------------------------------------------

func TestTripService_Update_KeepsPackingList(t *testing.T) {
	existing := validTrip()
	existing.ID = uuid.New()
	existing.PackingList = domain.NewPackingList()
	existing.PackingList[domain.CategoryClothing] = []domain.PackingItem{
		{Name: "T-shirts", Quantity: 3, Packed: true},
	}
	existing.Weather = mildWeather()

	r := echoRepo()
	r.getByID = func(_ context.Context, _ uuid.UUID) (domain.Trip, error) {
		return existing, nil
	}
	svc := newService(r)

	updated := existing
	updated.Destination = "Kyoto"
	updated.PackingList = nil // clients don't send the list on attribute updates

	got, err := svc.Update(context.Background(), updated)

	require.NoError(t, err)
	assert.Equal(t, "Kyoto", got.Destination)
	// Manual edits survive: the stored list is carried over, not regenerated.
	require.Len(t, got.PackingList[domain.CategoryClothing], 1)
	assert.True(t, got.PackingList[domain.CategoryClothing][0].Packed)
}

func TestTripService_Update_MissingDestination(t *testing.T) {
	svc := newService(echoRepo())

	trip := validTrip()
	trip.Destination = ""

	_, err := svc.Update(context.Background(), trip)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTripService_Update_NotFound(t *testing.T) {
	r := &mockTripRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Trip, error) {
			return domain.Trip{}, domain.ErrNotFound
		},
	}
	svc := newService(r)

	trip := validTrip()
	trip.ID = uuid.New()

	_, err := svc.Update(context.Background(), trip)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ---- Delete tests ----------------------------------------------------------

func TestTripService_Delete_OK(t *testing.T) {
	r := &mockTripRepo{
		delete: func(_ context.Context, _ uuid.UUID) error { return nil },
	}
	svc := newService(r)

	err := svc.Delete(context.Background(), uuid.New())

	assert.NoError(t, err)
}

func TestTripService_Delete_NotFound(t *testing.T) {
	r := &mockTripRepo{
		delete: func(_ context.Context, _ uuid.UUID) error { return domain.ErrNotFound },
	}
	svc := newService(r)

	err := svc.Delete(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ---- Regenerate tests ------------------------------------------------------

func TestTripService_Regenerate_RuleBased(t *testing.T) {
	existing := validTrip()
	existing.ID = uuid.New()
	existing.Weather = mildWeather()

	var saved domain.PackingList
	r := &mockTripRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Trip, error) {
			return existing, nil
		},
		updatePackingList: func(_ context.Context, _ uuid.UUID, list domain.PackingList) (domain.Trip, error) {
			saved = list
			updated := existing
			updated.PackingList = list
			return updated, nil
		},
	}
	svc := newService(r)

	got, result, err := svc.Regenerate(context.Background(), existing.ID, false)

	require.NoError(t, err)
	assert.False(t, result.Degraded, "rule-based generation is never degraded")
	assert.NotEmpty(t, saved[domain.CategoryClothing], "new list should be persisted")
	assert.Len(t, got.PackingList, 7)
}

func TestTripService_Regenerate_AI(t *testing.T) {
	existing := validTrip()
	existing.ID = uuid.New()

	aiList := domain.NewPackingList()
	aiList[domain.CategoryElectronics] = []domain.PackingItem{
		{Name: "Travel router", Quantity: 1, Essential: true, Reason: "hotel wifi"},
	}

	r := &mockTripRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Trip, error) {
			return existing, nil
		},
		updatePackingList: func(_ context.Context, _ uuid.UUID, list domain.PackingList) (domain.Trip, error) {
			updated := existing
			updated.PackingList = list
			return updated, nil
		},
	}
	gen := &stubGenerator{result: ai.Result{List: aiList}}
	svc := newServiceWith(r, gen)

	got, result, err := svc.Regenerate(context.Background(), existing.ID, true)

	require.NoError(t, err)
	assert.False(t, result.Degraded)
	require.Len(t, got.PackingList[domain.CategoryElectronics], 1)
	assert.Equal(t, "Travel router", got.PackingList[domain.CategoryElectronics][0].Name)
}

func TestTripService_Regenerate_AIDegraded(t *testing.T) {
	existing := validTrip()
	existing.ID = uuid.New()

	r := &mockTripRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Trip, error) {
			return existing, nil
		},
		updatePackingList: func(_ context.Context, _ uuid.UUID, list domain.PackingList) (domain.Trip, error) {
			updated := existing
			updated.PackingList = list
			return updated, nil
		},
	}
	gen := &stubGenerator{result: ai.Result{
		List:     domain.NewPackingList(),
		Degraded: true,
		Reason:   "completion backend not configured",
	}}
	svc := newServiceWith(r, gen)

	_, result, err := svc.Regenerate(context.Background(), existing.ID, true)

	require.NoError(t, err)
	assert.True(t, result.Degraded)
	assert.NotEmpty(t, result.Reason)
}

func TestTripService_Regenerate_NotFound(t *testing.T) {
	r := &mockTripRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Trip, error) {
			return domain.Trip{}, domain.ErrNotFound
		},
	}
	svc := newService(r)

	_, _, err := svc.Regenerate(context.Background(), uuid.New(), false)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ---- UpdatePackingList tests -----------------------------------------------

func TestTripService_UpdatePackingList_Normalizes(t *testing.T) {
	existing := validTrip()
	existing.ID = uuid.New()

	var saved domain.PackingList
	r := &mockTripRepo{
		updatePackingList: func(_ context.Context, _ uuid.UUID, list domain.PackingList) (domain.Trip, error) {
			saved = list
			updated := existing
			updated.PackingList = list
			return updated, nil
		},
	}
	svc := newService(r)

	edited := domain.PackingList{
		domain.CategoryClothing: []domain.PackingItem{
			{Name: "Socks", Quantity: 0}, // below floor
			{Name: "", Quantity: 2},      // nameless, dropped
		},
	}

	_, err := svc.UpdatePackingList(context.Background(), existing.ID, edited)

	require.NoError(t, err)
	require.Len(t, saved[domain.CategoryClothing], 1)
	assert.Equal(t, 1, saved[domain.CategoryClothing][0].Quantity)
	assert.Len(t, saved, 7, "all categories present after normalization")
}

// ---- Summary tests ---------------------------------------------------------

func TestTripService_Summary(t *testing.T) {
	existing := validTrip()
	existing.ID = uuid.New()
	existing.PackingList = domain.NewPackingList()
	existing.PackingList[domain.CategoryClothing] = []domain.PackingItem{
		{Name: "T-shirts", Quantity: 3, Packed: true},
		{Name: "Socks", Quantity: 4},
	}

	r := &mockTripRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Trip, error) {
			return existing, nil
		},
	}
	svc := newService(r)

	summary, err := svc.Summary(context.Background(), existing.ID)

	require.NoError(t, err)
	assert.Equal(t, 2, summary.TotalItems)
	assert.Equal(t, 1, summary.PackedItems)
	assert.Equal(t, 50, summary.PackedPercentage)
}

// ---- Suggestions tests -----------------------------------------------------

func TestTripService_Suggestions(t *testing.T) {
	existing := validTrip()
	existing.ID = uuid.New()

	r := &mockTripRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Trip, error) {
			return existing, nil
		},
	}
	gen := &stubGenerator{suggestions: []domain.Suggestion{
		{Name: "Universal Power Adapter", Category: domain.CategoryElectronics, Reason: "different outlets"},
	}}
	svc := newServiceWith(r, gen)

	got, err := svc.Suggestions(context.Background(), existing.ID)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Universal Power Adapter", got[0].Name)
}

// ---- RefreshWeather tests --------------------------------------------------

func TestTripService_RefreshWeather(t *testing.T) {
	t1 := validTrip()
	t1.ID = uuid.New()
	t2 := validTrip()
	t2.ID = uuid.New()

	var refreshed []uuid.UUID
	r := &mockTripRepo{
		listUpcoming: func(_ context.Context, _ time.Time) ([]domain.Trip, error) {
			return []domain.Trip{t1, t2}, nil
		},
		updateWeather: func(_ context.Context, id uuid.UUID, w *domain.WeatherSnapshot) (domain.Trip, error) {
			refreshed = append(refreshed, id)
			if id == t1.ID {
				// One failure must not stop the rest of the refresh.
				return domain.Trip{}, errors.New("write failed")
			}
			return t2, nil
		},
	}
	svc := newService(r)

	err := svc.RefreshWeather(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{t1.ID, t2.ID}, refreshed)
}
