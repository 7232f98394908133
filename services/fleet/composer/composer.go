package composer

import (
	"sort"
	"strings"
	"time"

	"github.com/piresc/fleettrack/internal/pkg/models"
	"github.com/piresc/fleettrack/internal/utils"
)

// Snapshot is one poll worth of fleet data
type Snapshot struct {
	Vehicles []models.Vehicle
	Drivers  []models.Driver
	Routes   []models.Route
	Live     []models.LiveDriver
	FeedMode models.FeedMode
	PolledAt time.Time
}

// Composer turns a snapshot into the dashboard view. It never mutates the snapshot.
type Composer struct {
	resolver PositionResolver
}

// NewComposer creates a composer
func NewComposer(resolver PositionResolver) *Composer {
	return &Composer{resolver: resolver}
}

// Compose builds the filtered view for the given options
func (c *Composer) Compose(snap Snapshot, opts models.FleetViewOptions, now time.Time) models.FleetView {
	liveByDriver := make(map[string]*models.LiveDriver, len(snap.Live))
	liveByVehicle := make(map[string]*models.LiveDriver)
	liveCount := 0
	for i := range snap.Live {
		live := &snap.Live[i]
		liveByDriver[live.DriverID] = live
		if live.VehicleID != "" {
			if prev, ok := liveByVehicle[live.VehicleID]; !ok || live.LastLocationUpdate.After(prev.LastLocationUpdate) {
				liveByVehicle[live.VehicleID] = live
			}
		}
		if live.GPSEnabled && now.Sub(live.LastLocationUpdate) <= c.resolver.StaleAfter {
			liveCount++
		}
	}

	names := make(map[string]string, len(snap.Drivers))
	for _, d := range snap.Drivers {
		names[d.ID] = d.Name
	}

	// the query narrows vehicles only; driver markers are never filtered
	query := strings.ToLower(opts.Query)

	view := models.FleetView{
		Vehicles: []models.VehicleMarker{},
		Drivers:  []models.DriverMarker{},
		Routes:   summarizeRoutes(snap.Routes),
		FeedMode: snap.FeedMode,
		PolledAt: snap.PolledAt,
		Counts: models.FleetCounts{
			TotalVehicles: len(snap.Vehicles),
			LiveDrivers:   liveCount,
		},
	}

	var selected *models.VehicleMarker
	for _, v := range snap.Vehicles {
		marker := c.vehicleMarker(v, liveByVehicle[v.ID], names, now)
		if v.ID == opts.SelectedVehicleID {
			m := marker
			selected = &m
		}
		if !opts.ShowVehicles || !matches(query, v.Model, v.VIN, marker.DriverName) {
			continue
		}
		view.Vehicles = append(view.Vehicles, marker)
	}
	view.Counts.ShownVehicles = len(view.Vehicles)

	if opts.ShowDrivers {
		view.Drivers = c.driverMarkers(snap.Drivers, liveByDriver, now)
	}

	if selected != nil {
		view.Selection = selection(*selected, opts)
	}

	sort.Slice(view.Vehicles, func(i, j int) bool { return view.Vehicles[i].Vehicle.ID < view.Vehicles[j].Vehicle.ID })
	return view
}

func (c *Composer) vehicleMarker(v models.Vehicle, live *models.LiveDriver, names map[string]string, now time.Time) models.VehicleMarker {
	marker := models.VehicleMarker{Vehicle: v}
	if live != nil {
		marker.DriverID = live.DriverID
		marker.DriverName = names[live.DriverID]
	}

	var persisted *models.Location
	if loc, ok := v.PersistedLocation(); ok {
		persisted = &loc
	}
	marker.Position = c.resolver.Resolve(KindVehicle, v.ID, live, persisted, now)
	return marker
}

// driverMarkers covers every driver record plus live drivers without a record
func (c *Composer) driverMarkers(drivers []models.Driver, liveByDriver map[string]*models.LiveDriver, now time.Time) []models.DriverMarker {
	markers := make([]models.DriverMarker, 0, len(drivers))
	seen := make(map[string]bool, len(drivers))

	add := func(id, name string, persisted *models.Location) {
		seen[id] = true
		live := liveByDriver[id]
		marker := models.DriverMarker{
			DriverID: id,
			Name:     name,
			Position: c.resolver.Resolve(KindDriver, id, live, persisted, now),
		}
		if live != nil {
			marker.VehicleID = live.VehicleID
			marker.SpeedKmh = live.SpeedKmh
		}
		markers = append(markers, marker)
	}

	for _, d := range drivers {
		var persisted *models.Location
		if loc, ok := d.PersistedLocation(); ok {
			persisted = &loc
		}
		add(d.ID, d.Name, persisted)
	}
	for id := range liveByDriver {
		if !seen[id] {
			add(id, "", nil)
		}
	}

	sort.Slice(markers, func(i, j int) bool { return markers[i].DriverID < markers[j].DriverID })
	return markers
}

func selection(marker models.VehicleMarker, opts models.FleetViewOptions) *models.Selection {
	sel := &models.Selection{
		VehicleID: marker.Vehicle.ID,
		Position:  marker.Position.Location,
	}
	if opts.Viewer == nil {
		return sel
	}

	distance := utils.DistanceBetween(*opts.Viewer, sel.Position)
	sel.DistanceKm = &distance
	if opts.ShowConnector {
		sel.Connector = []models.Location{*opts.Viewer, sel.Position}
	}
	return sel
}

func summarizeRoutes(routes []models.Route) []models.RouteSummary {
	summaries := make([]models.RouteSummary, 0, len(routes))
	for _, r := range routes {
		summaries = append(summaries, models.RouteSummary{
			RouteID:    r.RouteID,
			DriverID:   r.DriverID,
			Status:     r.Status,
			DistanceKm: r.DistanceKm,
		})
	}
	return summaries
}

// matches is a case-insensitive substring match; an empty query matches everything
func matches(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	for _, f := range fields {
		if f != "" && strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}
