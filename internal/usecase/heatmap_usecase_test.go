package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"corruptx/internal/domain/entity"
)

func locatedReport(id string, lat, lng float64, campaignID, corruptionType string) *entity.Report {
	return &entity.Report{
		ID:             id,
		UserID:         "user-1",
		Latitude:       lat,
		Longitude:      lng,
		CampaignID:     campaignID,
		CorruptionType: corruptionType,
	}
}

func TestAggregateHeatmapBucketsNearbyCoordinates(t *testing.T) {
	// Both round to (12.9712, 77.5946); the third lands elsewhere.
	reports := []*entity.Report{
		locatedReport("a", 12.97120, 77.59460, "", "Bribery"),
		locatedReport("b", 12.97124, 77.59464, "", "Bribery"),
		locatedReport("c", 12.97200, 77.60000, "", "Fraud"),
	}

	points := AggregateHeatmap(reports, nil)

	assert.Len(t, points, 2)
	assert.Equal(t, 2, points[0].Intensity)
	assert.Equal(t, 12.9712, points[0].Latitude)
	assert.Equal(t, 77.5946, points[0].Longitude)
	assert.Equal(t, 1, points[1].Intensity)
}

func TestAggregateHeatmapOrderIndependent(t *testing.T) {
	reports := []*entity.Report{
		locatedReport("a", 12.97120, 77.59460, "camp-1", "Bribery"),
		locatedReport("b", 12.97124, 77.59464, "camp-2", "Fraud"),
		locatedReport("c", 12.97200, 77.60000, "", "Nepotism"),
	}
	reversed := []*entity.Report{reports[2], reports[1], reports[0]}

	forward := AggregateHeatmap(reports, nil)
	backward := AggregateHeatmap(reversed, nil)

	// Same multiset of points either way, coordinates included: both
	// insertion orders snap to the same bucket grid.
	assert.ElementsMatch(t, forward, backward)
}

func TestAggregateHeatmapSkipsUnlocatedReports(t *testing.T) {
	reports := []*entity.Report{
		locatedReport("a", 12.9712, 77.5946, "", "Bribery"),
		{ID: "legacy", UserID: "user-1", CorruptionType: "Fraud"},
	}

	points := AggregateHeatmap(reports, nil)

	assert.Len(t, points, 1)
	assert.Equal(t, 1, points[0].Intensity)
}

func TestAggregateHeatmapJoinsDistinctLabels(t *testing.T) {
	reports := []*entity.Report{
		locatedReport("a", 12.9712, 77.5946, "camp-1", "Bribery"),
		locatedReport("b", 12.9712, 77.5946, "camp-2", "Fraud"),
		locatedReport("c", 12.9712, 77.5946, "camp-1", "Bribery"),
	}
	titles := map[string]string{
		"camp-1": "Anti-Bribery Drive",
		"camp-2": "Audit The Books",
	}

	points := AggregateHeatmap(reports, titles)

	assert.Len(t, points, 1)
	assert.Equal(t, 3, points[0].Intensity)
	assert.Equal(t, "Anti-Bribery Drive, Audit The Books", points[0].Campaigns)
	assert.Equal(t, "Bribery, Fraud", points[0].CorruptionType)
}

func TestIntensityLevels(t *testing.T) {
	assert.Equal(t, "low", IntensityLevel(1))
	assert.Equal(t, "medium", IntensityLevel(2))
	assert.Equal(t, "medium", IntensityLevel(5))
	assert.Equal(t, "high", IntensityLevel(6))
}

func TestGetHeatmapResolvesCampaignTitles(t *testing.T) {
	reportRepo := newFakeReportRepo()
	campaignRepo := newFakeCampaignRepo()
	uc := NewHeatmapUseCase(reportRepo, campaignRepo)

	campaignRepo.Create(context.Background(), &entity.Campaign{
		ID:     "camp-1",
		Title:  "Anti-Bribery Drive",
		Status: entity.CampaignStatusActive,
	})
	reportRepo.Create(context.Background(), locatedReport("a", 12.9712, 77.5946, "camp-1", "Bribery"))

	points, err := uc.GetHeatmap(context.Background(), HeatmapFilter{})

	assert.NoError(t, err)
	assert.Len(t, points, 1)
	assert.Equal(t, "Anti-Bribery Drive", points[0].Campaigns)
	assert.Equal(t, "low", points[0].Level)
}

func TestGetHeatmapFiltersByCorruptionType(t *testing.T) {
	reportRepo := newFakeReportRepo()
	campaignRepo := newFakeCampaignRepo()
	uc := NewHeatmapUseCase(reportRepo, campaignRepo)

	reportRepo.Create(context.Background(), locatedReport("a", 12.9712, 77.5946, "", "Bribery"))
	reportRepo.Create(context.Background(), locatedReport("b", 13.0000, 77.6000, "", "Fraud"))

	points, err := uc.GetHeatmap(context.Background(), HeatmapFilter{CorruptionType: "Bribery"})

	assert.NoError(t, err)
	assert.Len(t, points, 1)
	assert.Equal(t, "Bribery", points[0].CorruptionType)
}
