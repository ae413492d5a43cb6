package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/himanshu31shr/flipkart-amazon-tools/internal/domain/entity"
	"github.com/himanshu31shr/flipkart-amazon-tools/internal/domain/repository"
	"github.com/himanshu31shr/flipkart-amazon-tools/pkg/logger"
)

// SubmitDeductionsUseCase is the inventory mutation boundary: it applies a
// batch of deduction requests in one transaction, row-locking each
// category group's level and writing one audit movement per applied
// request. Per-request problems (unknown group, level driven negative)
// land in the result as errors/warnings without aborting the batch;
// infrastructure failures roll the whole transaction back.
type SubmitDeductionsUseCase struct {
	txRunner TxRunner
	log      *logger.Logger
}

// NewSubmitDeductionsUseCase builds the use case.
func NewSubmitDeductionsUseCase(txRunner TxRunner, log *logger.Logger) *SubmitDeductionsUseCase {
	return &SubmitDeductionsUseCase{txRunner: txRunner, log: log}
}

// SubmitDeductionRequests applies the batch. transactionID groups the
// audit movements of one processed order.
func (uc *SubmitDeductionsUseCase) SubmitDeductionRequests(ctx context.Context, transactionID string, requests []entity.DeductionRequest) (*entity.DeductionResult, error) {
	result := &entity.DeductionResult{}
	now := time.Now()

	err := uc.txRunner.Run(ctx, func(
		levelRepo repository.InventoryLevelRepository,
		movementRepo repository.DeductionMovementRepository,
	) error {
		for _, req := range requests {
			level, err := levelRepo.GetForUpdate(ctx, req.CategoryGroupID)
			if err != nil {
				return err
			}
			if level == nil {
				result.Errors = append(result.Errors,
					fmt.Sprintf("no inventory level for category group %s (SKU %s): deduction skipped", req.CategoryGroupID, req.SKU))
				continue
			}

			level.Quantity = level.Quantity.Sub(req.Quantity)
			if level.Quantity.LessThan(decimal.Zero) {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("inventory for group %s is negative after deduction (%s %s)", req.CategoryGroupID, level.Quantity.String(), level.Unit))
			}
			level.UpdatedAt = now
			if err := levelRepo.Upsert(ctx, level); err != nil {
				return err
			}

			mov := &entity.DeductionMovement{
				ID:              uuid.New().String(),
				TransactionID:   transactionID,
				CategoryGroupID: req.CategoryGroupID,
				SKU:             req.SKU,
				OrderReference:  req.OrderReference,
				Platform:        req.Platform,
				Quantity:        req.Quantity,
				Unit:            req.Unit,
				IsCascade:       req.IsCascade,
				CreatedAt:       now,
			}
			if req.CascadeSource != nil {
				mov.SourceCategory = req.CascadeSource.SourceCategoryName
				mov.TargetCategory = req.CascadeSource.TargetCategoryName
			}
			if err := movementRepo.Create(ctx, mov); err != nil {
				return err
			}
			result.Deductions = append(result.Deductions, *mov)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("transaction_id", transactionID).
		Int("requested", len(requests)).
		Int("applied", len(result.Deductions)).
		Int("skipped", len(result.Errors)).
		Msg("deduction batch applied")
	return result, nil
}
