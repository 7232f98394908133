package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/piresc/fleettrack/internal/pkg/constants"
	"github.com/piresc/fleettrack/internal/pkg/database"
	"github.com/piresc/fleettrack/internal/pkg/models"
	"github.com/piresc/fleettrack/services/location"
)

// upsertScript replaces a driver's live state only when the incoming capture time is
// not older than the stored one. Comparing inside Redis keeps concurrent updates for
// the same driver ordered without any lock in the service.
//
// KEYS: state hash, live set, geo set
// ARGV: driver id, ts (unix micros), lat, lng, vehicle id, speed, accuracy, geohash
var upsertScript = redis.NewScript(`
local stored = redis.call('HGET', KEYS[1], 'ts')
if stored and tonumber(ARGV[2]) < tonumber(stored) then
	return 0
end
redis.call('HSET', KEYS[1],
	'driver_id', ARGV[1], 'ts', ARGV[2], 'lat', ARGV[3], 'lng', ARGV[4],
	'vehicle_id', ARGV[5], 'speed', ARGV[6], 'accuracy', ARGV[7], 'geohash', ARGV[8], 'gps', '1')
redis.call('SADD', KEYS[2], ARGV[1])
if math.abs(tonumber(ARGV[3])) <= 85.05112878 then
	redis.call('GEOADD', KEYS[3], ARGV[4], ARGV[3], ARGV[1])
else
	-- outside the geo index range; drop the stale index entry
	redis.call('ZREM', KEYS[3], ARGV[1])
end
return 1
`)

// setGPSScript flips the gps flag of an existing state only
var setGPSScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
	return 0
end
redis.call('HSET', KEYS[1], 'gps', ARGV[1])
return 1
`)

type locationRepo struct {
	redisClient *database.RedisClient
}

// NewLocationRepository creates a new Redis-backed live state repository.
// Entries never expire: a driver that stops reporting keeps its last sample.
func NewLocationRepository(redisClient *database.RedisClient) location.LocationRepo {
	return &locationRepo{
		redisClient: redisClient,
	}
}

func stateKey(driverID string) string {
	return fmt.Sprintf(constants.KeyDriverLocation, driverID)
}

// UpsertLatest stores the state if it is not older than the stored one
func (r *locationRepo) UpsertLatest(ctx context.Context, state models.DriverLiveState) (bool, error) {
	p := state.Latest
	keys := []string{stateKey(state.DriverID), constants.KeyLiveDrivers, constants.KeyDriverGeo}
	args := []interface{}{
		state.DriverID,
		strconv.FormatInt(p.CapturedAt.UnixMicro(), 10),
		formatFloat(p.Latitude),
		formatFloat(p.Longitude),
		p.VehicleID,
		formatFloat(p.SpeedKmh),
		formatFloat(p.AccuracyMeters),
		state.Geohash,
	}

	res, err := upsertScript.Run(ctx, r.redisClient.Client, keys, args...).Int()
	if err != nil {
		return false, fmt.Errorf("failed to upsert driver location: %w", err)
	}
	return res == 1, nil
}

// ListStates returns the state of every driver that has ever reported, in no particular order
func (r *locationRepo) ListStates(ctx context.Context) ([]models.DriverLiveState, error) {
	driverIDs, err := r.redisClient.Client.SMembers(ctx, constants.KeyLiveDrivers).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list live drivers: %w", err)
	}
	if len(driverIDs) == 0 {
		return []models.DriverLiveState{}, nil
	}

	pipe := r.redisClient.Client.Pipeline()
	cmds := make([]*redis.StringStringMapCmd, len(driverIDs))
	for i, id := range driverIDs {
		cmds[i] = pipe.HGetAll(ctx, stateKey(id))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to load live driver states: %w", err)
	}

	states := make([]models.DriverLiveState, 0, len(driverIDs))
	for i, cmd := range cmds {
		fields := cmd.Val()
		if len(fields) == 0 {
			continue
		}
		state, err := parseState(driverIDs[i], fields)
		if err != nil {
			return nil, err
		}
		states = append(states, state)
	}
	return states, nil
}

// GetState returns one driver's state
func (r *locationRepo) GetState(ctx context.Context, driverID string) (*models.DriverLiveState, error) {
	fields, err := r.redisClient.Client.HGetAll(ctx, stateKey(driverID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get driver location: %w", err)
	}
	if len(fields) == 0 {
		return nil, location.ErrDriverNotFound
	}

	state, err := parseState(driverID, fields)
	if err != nil {
		return nil, err
	}
	return &state, nil
}

// FindNearby queries the geo set
func (r *locationRepo) FindNearby(ctx context.Context, center models.Location, radiusKm float64) ([]location.DriverDistance, error) {
	hits, err := r.redisClient.GeoRadius(ctx, constants.KeyDriverGeo, center.Longitude, center.Latitude, radiusKm, "km")
	if err != nil {
		return nil, fmt.Errorf("failed to find nearby drivers: %w", err)
	}

	out := make([]location.DriverDistance, 0, len(hits))
	for _, h := range hits {
		out = append(out, location.DriverDistance{DriverID: h.Name, DistanceKm: h.Dist})
	}
	return out, nil
}

// SetGPSEnabled sets the gps flag; the next accepted update turns it back on
func (r *locationRepo) SetGPSEnabled(ctx context.Context, driverID string, enabled bool) error {
	flag := "0"
	if enabled {
		flag = "1"
	}

	res, err := setGPSScript.Run(ctx, r.redisClient.Client, []string{stateKey(driverID)}, flag).Int()
	if err != nil {
		return fmt.Errorf("failed to set gps flag: %w", err)
	}
	if res == 0 {
		return location.ErrDriverNotFound
	}
	return nil
}

func parseState(driverID string, fields map[string]string) (models.DriverLiveState, error) {
	ts, err := strconv.ParseInt(fields[constants.FieldTimestamp], 10, 64)
	if err != nil {
		return models.DriverLiveState{}, fmt.Errorf("invalid timestamp for driver %s: %w", driverID, err)
	}
	lat, err := strconv.ParseFloat(fields[constants.FieldLatitude], 64)
	if err != nil {
		return models.DriverLiveState{}, fmt.Errorf("invalid latitude for driver %s: %w", driverID, err)
	}
	lng, err := strconv.ParseFloat(fields[constants.FieldLongitude], 64)
	if err != nil {
		return models.DriverLiveState{}, fmt.Errorf("invalid longitude for driver %s: %w", driverID, err)
	}
	// optional numeric fields default to zero
	speed, _ := strconv.ParseFloat(fields[constants.FieldSpeed], 64)
	accuracy, _ := strconv.ParseFloat(fields[constants.FieldAccuracy], 64)

	capturedAt := time.UnixMicro(ts).UTC()
	return models.DriverLiveState{
		DriverID: driverID,
		Latest: models.DevicePosition{
			DriverID:       driverID,
			VehicleID:      fields[constants.FieldVehicleID],
			Latitude:       lat,
			Longitude:      lng,
			SpeedKmh:       speed,
			AccuracyMeters: accuracy,
			CapturedAt:     capturedAt,
		},
		GPSEnabled: fields[constants.FieldGPSEnabled] == "1",
		LastSeenAt: capturedAt,
		Geohash:    fields[constants.FieldGeohash],
	}, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
