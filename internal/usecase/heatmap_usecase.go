package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"corruptx/internal/domain/entity"
	"corruptx/internal/domain/repository"
	"corruptx/pkg/logger"
)

// HeatmapPoint is one rendered marker: all reports whose coordinates round
// to the same 4-decimal bucket, weighted by how many landed there.
type HeatmapPoint struct {
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	Intensity      int     `json:"intensity"`
	Level          string  `json:"level"`
	Campaigns      string  `json:"campaigns"`
	CorruptionType string  `json:"corruption_types"`
}

type HeatmapFilter struct {
	CampaignID     string
	CorruptionType string
	CreatedFrom    *time.Time
	CreatedTo      *time.Time
}

type HeatmapUseCase struct {
	reportRepo   repository.ReportRepository
	campaignRepo repository.CampaignRepository
}

func NewHeatmapUseCase(
	reportRepo repository.ReportRepository,
	campaignRepo repository.CampaignRepository,
) *HeatmapUseCase {
	return &HeatmapUseCase{
		reportRepo:   reportRepo,
		campaignRepo: campaignRepo,
	}
}

// IntensityLevel maps a bucket count to its display tier.
func IntensityLevel(count int) string {
	switch {
	case count <= 1:
		return "low"
	case count <= 5:
		return "medium"
	default:
		return "high"
	}
}

// AggregateHeatmap buckets reports by coordinates rounded to 4 decimal
// places (~11m). Reports without coordinates are skipped, never defaulted
// to 0,0. campaignTitles maps campaign IDs to display labels; IDs with no
// entry fall back to the raw ID.
func AggregateHeatmap(reports []*entity.Report, campaignTitles map[string]string) []HeatmapPoint {
	type bucket struct {
		lat, lng  float64
		count     int
		campaigns map[string]struct{}
		types     map[string]struct{}
	}

	buckets := make(map[string]*bucket)
	order := make([]string, 0)

	for _, r := range reports {
		if !r.HasCoordinates() {
			continue
		}
		key := fmt.Sprintf("%.4f,%.4f", r.Latitude, r.Longitude)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{
				lat:       roundCoord(r.Latitude),
				lng:       roundCoord(r.Longitude),
				campaigns: make(map[string]struct{}),
				types:     make(map[string]struct{}),
			}
			buckets[key] = b
			order = append(order, key)
		}
		b.count++
		if r.CampaignID != "" {
			label := r.CampaignID
			if title, ok := campaignTitles[r.CampaignID]; ok && title != "" {
				label = title
			}
			b.campaigns[label] = struct{}{}
		}
		if r.CorruptionType != "" {
			b.types[r.CorruptionType] = struct{}{}
		}
	}

	points := make([]HeatmapPoint, 0, len(buckets))
	for _, key := range order {
		b := buckets[key]
		points = append(points, HeatmapPoint{
			Latitude:       b.lat,
			Longitude:      b.lng,
			Intensity:      b.count,
			Level:          IntensityLevel(b.count),
			Campaigns:      joinSorted(b.campaigns),
			CorruptionType: joinSorted(b.types),
		})
	}
	return points
}

// roundCoord snaps a coordinate to the 4-decimal bucket grid so points
// carry the bucket's coordinates, not whichever report happened to land
// there first.
func roundCoord(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}

func joinSorted(set map[string]struct{}) string {
	labels := make([]string, 0, len(set))
	for l := range set {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	return strings.Join(labels, ", ")
}

// GetHeatmap loads reports matching the filter and aggregates them into
// map points.
func (uc *HeatmapUseCase) GetHeatmap(ctx context.Context, filter HeatmapFilter) ([]HeatmapPoint, error) {
	repoFilter := repository.ReportFilter{
		CampaignID:     filter.CampaignID,
		CorruptionType: filter.CorruptionType,
		CreatedFrom:    filter.CreatedFrom,
		CreatedTo:      filter.CreatedTo,
	}

	reports, _, err := uc.reportRepo.List(ctx, repoFilter, 0, 0)
	if err != nil {
		return nil, err
	}

	titles := make(map[string]string)
	campaigns, err := uc.campaignRepo.List(ctx, "")
	if err != nil {
		logger.Warn("Failed to load campaign titles for heatmap: %v", err)
	} else {
		for _, c := range campaigns {
			titles[c.ID] = c.Title
		}
	}

	return AggregateHeatmap(reports, titles), nil
}
