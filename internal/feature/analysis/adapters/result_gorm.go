// Package adapters provides the persistence layer for the analysis feature.
package adapters

import (
	"context"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"fno_analyzer/internal/feature/analysis/domain/entity"
	"fno_analyzer/internal/feature/analysis/usecase"
)

type resultGorm struct {
	db *gorm.DB
}

// Compile-time check that resultGorm implements ResultRepository.
var _ usecase.ResultRepository = (*resultGorm)(nil)

// NewResultRepository creates the gorm-backed result store.
func NewResultRepository(db *gorm.DB) *resultGorm {
	return &resultGorm{db: db}
}

// AnalysisResultModel is one row of the full per-instrument result set.
// Rows are keyed by an explicit analysis_date column instead of per-date
// table names, so runs for different dates share one fixed schema.
type AnalysisResultModel struct {
	ID              uint      `gorm:"primaryKey"`
	AnalysisDate    string    `gorm:"size:10;not null;index"`
	StockSymbol     string    `gorm:"size:32;not null"`
	PrevDayClose    *float64
	PrevDayOI       *int64
	Price0920       *float64
	OI0920          *int64
	ErrorMessage    *string   `gorm:"size:512"`
	RecordTimestamp time.Time `gorm:"not null"`
}

func (AnalysisResultModel) TableName() string {
	return "analysis_results"
}

// FilteredStockModel is one row of the filtered subset.
type FilteredStockModel struct {
	ID              uint      `gorm:"primaryKey"`
	AnalysisDate    string    `gorm:"size:10;not null;index"`
	StockSymbol     string    `gorm:"size:32;not null"`
	PercentChange   float64   `gorm:"not null"`
	RecordTimestamp time.Time `gorm:"not null"`
}

func (FilteredStockModel) TableName() string {
	return "filtered_stocks"
}

func toResultModel(date string, ts time.Time, r entity.StockAnalysisResult) AnalysisResultModel {
	return AnalysisResultModel{
		AnalysisDate:    date,
		StockSymbol:     r.Symbol,
		PrevDayClose:    r.PreviousClose,
		PrevDayOI:       r.PreviousOpenInterest,
		Price0920:       r.CurrentPrice,
		OI0920:          r.CurrentOpenInterest,
		ErrorMessage:    r.ErrorMessage(),
		RecordTimestamp: ts,
	}
}

// Replace writes one run as a full snapshot for the analysis date: both
// tables are cleared for that date and re-inserted inside one transaction,
// so a second run for the same date fully replaces the first. Every row of
// the batch carries the same write timestamp.
func (r *resultGorm) Replace(ctx context.Context, analysisDate time.Time, results []entity.StockAnalysisResult, filtered []entity.FilteredStock) error {
	date := analysisDate.Format(usecase.DateLayout)
	now := time.Now().UTC()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("analysis_date = ?", date).Delete(&AnalysisResultModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("analysis_date = ?", date).Delete(&FilteredStockModel{}).Error; err != nil {
			return err
		}

		if len(results) > 0 {
			rows := make([]AnalysisResultModel, 0, len(results))
			for _, res := range results {
				rows = append(rows, toResultModel(date, now, res))
			}
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}

		if len(filtered) > 0 {
			rows := make([]FilteredStockModel, 0, len(filtered))
			for _, f := range filtered {
				rows = append(rows, FilteredStockModel{
					AnalysisDate:    date,
					StockSymbol:     f.Symbol,
					PercentChange:   f.PercentChange,
					RecordTimestamp: now,
				})
			}
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.Info("analysis snapshot stored", "analysis_date", date, "rows", len(results), "filtered", len(filtered))
	return nil
}
