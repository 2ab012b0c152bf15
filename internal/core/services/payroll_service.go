package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/eventstaff/esa_backend/internal/apperrors"
	"github.com/eventstaff/esa_backend/internal/core/domain"
	portsrepo "github.com/eventstaff/esa_backend/internal/core/ports/repositories"
	portssvc "github.com/eventstaff/esa_backend/internal/core/ports/services"
	"github.com/eventstaff/esa_backend/internal/dto"
	"github.com/eventstaff/esa_backend/internal/middleware"
	"github.com/eventstaff/esa_backend/internal/platform/config"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const listBatchesLimit = 100

var oneHundred = decimal.NewFromInt(100)

// PayrollService runs the payment batching workflow: aggregating pending
// services, freezing them into batches and settling the batches.
type PayrollService struct {
	batchRepo     portsrepo.PaymentBatchRepositoryFacade
	personnelRepo portsrepo.PersonnelRepositoryFacade
	authorizer    portssvc.OrganizationAuthorizerSvc
	cfg           *config.Config
}

// NewPayrollService creates a new PayrollService.
func NewPayrollService(
	br portsrepo.PaymentBatchRepositoryFacade,
	pr portsrepo.PersonnelRepositoryFacade,
	authorizer portssvc.OrganizationAuthorizerSvc,
	cfg *config.Config,
) *PayrollService {
	return &PayrollService{batchRepo: br, personnelRepo: pr, authorizer: authorizer, cfg: cfg}
}

var _ portssvc.PayrollSvcFacade = (*PayrollService)(nil)

// defaultDiscountPct is the advisory discount applied to TARDE services in
// the aggregator view, before an admin settles on a per-line discount.
func (s *PayrollService) defaultDiscountPct() decimal.Decimal {
	return decimal.NewFromFloat(s.cfg.DefaultLateDiscountPct)
}

// ListPendingServices aggregates every PENDIENTE service on COMPLETADO
// contracts, grouped per staff member. Amounts are advisory; the batch
// snapshot taken at creation time is what gets paid.
func (s *PayrollService) ListPendingServices(ctx context.Context, requesterUserID string, organizationID string) (*dto.ListPendingServicesResponse, error) {
	if _, err := s.authorizer.AuthorizeUserAction(ctx, requesterUserID, organizationID, adminRoles...); err != nil {
		return nil, err
	}

	services, err := s.batchRepo.ListPendingServicesByOrganization(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	discount := s.defaultDiscountPct()
	resp := dto.ListPendingServicesResponse{Groups: []dto.PendingPersonnelGroup{}}
	index := make(map[string]int)
	for _, svc := range services {
		payable := svc.PayableAmount(discount)
		entry := dto.PendingServiceEntry{
			AssignedServiceID: svc.AssignedServiceID,
			ServiceTypeName:   svc.ServiceTypeName,
			AgreedAmount:      svc.AgreedAmount,
			PayableAmount:     payable,
			Attendance:        svc.Attendance,
			ContractID:        svc.ContractID,
			ContractDate:      svc.ContractDate,
			ContractTypeName:  svc.ContractTypeName,
		}
		i, ok := index[svc.PersonnelID]
		if !ok {
			i = len(resp.Groups)
			index[svc.PersonnelID] = i
			resp.Groups = append(resp.Groups, dto.PendingPersonnelGroup{
				PersonnelID:   svc.PersonnelID,
				PersonnelName: svc.PersonnelName,
				Total:         decimal.Zero,
			})
		}
		resp.Groups[i].Services = append(resp.Groups[i].Services, entry)
		resp.Groups[i].Total = resp.Groups[i].Total.Add(payable)
	}
	return &resp, nil
}

// CreateBatch freezes the selected pending services into a new
// EN_PREPARACION batch. Each detail snapshots the payable amount and discount
// at this moment; later edits to the assignment do not alter the batch.
func (s *PayrollService) CreateBatch(ctx context.Context, requesterUserID string, organizationID string, req dto.CreateBatchRequest) (*domain.PaymentBatch, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.authorizer.AuthorizeUserAction(ctx, requesterUserID, organizationID, adminRoles...); err != nil {
		return nil, err
	}

	discounts := make(map[string]decimal.Decimal, len(req.Services))
	ids := make([]string, 0, len(req.Services))
	for _, sel := range req.Services {
		if _, dup := discounts[sel.AssignedServiceID]; dup {
			return nil, fmt.Errorf("service %s selected twice: %w", sel.AssignedServiceID, apperrors.ErrValidation)
		}
		if sel.DiscountPct.IsNegative() || sel.DiscountPct.GreaterThan(oneHundred) {
			return nil, fmt.Errorf("discount for service %s must be between 0 and 100: %w", sel.AssignedServiceID, apperrors.ErrValidation)
		}
		discounts[sel.AssignedServiceID] = sel.DiscountPct
		ids = append(ids, sel.AssignedServiceID)
	}

	eligible, err := s.batchRepo.FindPendingServicesByIDs(ctx, organizationID, ids)
	if err != nil {
		return nil, err
	}
	if len(eligible) != len(ids) {
		return nil, fmt.Errorf("%d of %d selected services are no longer pending: %w", len(ids)-len(eligible), len(ids), apperrors.ErrConflict)
	}

	now := time.Now()
	batch := domain.PaymentBatch{
		BatchID:        uuid.NewString(),
		OrganizationID: organizationID,
		Name:           req.Name,
		Status:         domain.BatchInPreparation,
		TotalAmount:    decimal.Zero,
		ScheduledDate:  req.ScheduledDate,
		Version:        1,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requesterUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requesterUserID,
		},
	}

	details := make([]domain.PaymentBatchDetail, 0, len(eligible))
	shares := make(map[string]decimal.Decimal)
	for _, svc := range eligible {
		discount := discounts[svc.AssignedServiceID]
		amount := svc.PayableAmount(discount)
		details = append(details, domain.PaymentBatchDetail{
			DetailID:          uuid.NewString(),
			BatchID:           batch.BatchID,
			AssignedServiceID: svc.AssignedServiceID,
			PersonnelID:       svc.PersonnelID,
			Amount:            amount,
			DiscountPct:       discount,
			Attendance:        svc.Attendance,
			AuditFields:       batch.AuditFields,
		})
		shares[svc.PersonnelID] = shares[svc.PersonnelID].Add(amount)
		batch.TotalAmount = batch.TotalAmount.Add(amount)
	}

	rollups := make([]domain.PaymentBatchPersonnel, 0, len(shares))
	for _, svc := range eligible {
		share, ok := shares[svc.PersonnelID]
		if !ok {
			continue
		}
		delete(shares, svc.PersonnelID)
		rollups = append(rollups, domain.PaymentBatchPersonnel{
			BatchPersonnelID: uuid.NewString(),
			BatchID:          batch.BatchID,
			PersonnelID:      svc.PersonnelID,
			ShareAmount:      share,
			CollectionDone:   false,
			AuditFields:      batch.AuditFields,
		})
	}

	if err := s.batchRepo.SaveBatch(ctx, batch, details, rollups); err != nil {
		logger.Error("Failed to save payment batch", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Payment batch created",
		slog.String("batch_id", batch.BatchID),
		slog.Int("services", len(details)),
		slog.String("total", batch.TotalAmount.String()))
	return &batch, nil
}

// findOwnedBatch loads a batch and verifies it belongs to the organization.
func (s *PayrollService) findOwnedBatch(ctx context.Context, organizationID, batchID string) (*domain.PaymentBatch, error) {
	batch, err := s.batchRepo.FindBatchByID(ctx, batchID)
	if err != nil {
		return nil, err
	}
	if batch.OrganizationID != organizationID {
		return nil, apperrors.ErrNotFound
	}
	return batch, nil
}

// GetBatch returns the full batch view: header, frozen details and rollups.
func (s *PayrollService) GetBatch(ctx context.Context, requesterUserID string, organizationID string, batchID string) (*dto.GetBatchResponse, error) {
	if _, err := s.authorizer.AuthorizeUserAction(ctx, requesterUserID, organizationID, adminRoles...); err != nil {
		return nil, err
	}
	batch, err := s.findOwnedBatch(ctx, organizationID, batchID)
	if err != nil {
		return nil, err
	}
	details, err := s.batchRepo.FindBatchDetails(ctx, batchID)
	if err != nil {
		return nil, err
	}
	personnel, err := s.batchRepo.FindBatchPersonnel(ctx, batchID)
	if err != nil {
		return nil, err
	}
	resp := dto.ToGetBatchResponse(batch, details, personnel)
	return &resp, nil
}

// ListBatches returns the organization's batches, newest first.
func (s *PayrollService) ListBatches(ctx context.Context, requesterUserID string, organizationID string) ([]domain.PaymentBatch, error) {
	if _, err := s.authorizer.AuthorizeUserAction(ctx, requesterUserID, organizationID, adminRoles...); err != nil {
		return nil, err
	}
	batches, _, err := s.batchRepo.ListBatchesByOrganization(ctx, organizationID, listBatchesLimit, nil)
	return batches, err
}

// ToggleCollection flips the collection flag on one staff member's rollup.
// Only meaningful while the batch is still EN_PREPARACION.
func (s *PayrollService) ToggleCollection(ctx context.Context, requesterUserID string, organizationID string, batchID string, personnelID string, collectionDone bool) error {
	if _, err := s.authorizer.AuthorizeUserAction(ctx, requesterUserID, organizationID, adminRoles...); err != nil {
		return err
	}
	batch, err := s.findOwnedBatch(ctx, organizationID, batchID)
	if err != nil {
		return err
	}
	if batch.Status != domain.BatchInPreparation {
		return fmt.Errorf("collection flags are frozen once the batch leaves preparation: %w", apperrors.ErrConflict)
	}
	return s.batchRepo.UpdateCollectionDone(ctx, batchID, personnelID, collectionDone, requesterUserID, time.Now())
}

// FinalizeBatch settles an EN_PREPARACION batch. Services of staff whose
// collection is done become PAGADO; the rest revert to PENDIENTE and leave
// the batch, so they reappear in the pending aggregator.
func (s *PayrollService) FinalizeBatch(ctx context.Context, requesterUserID string, organizationID string, batchID string, req dto.FinalizeBatchRequest) (*dto.FinalizeBatchResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.authorizer.AuthorizeUserAction(ctx, requesterUserID, organizationID, adminRoles...); err != nil {
		return nil, err
	}

	batch, err := s.findOwnedBatch(ctx, organizationID, batchID)
	if err != nil {
		return nil, err
	}
	if batch.Status != domain.BatchInPreparation {
		return nil, fmt.Errorf("only batches in preparation can be finalized: %w", apperrors.ErrConflict)
	}

	personnel, err := s.batchRepo.FindBatchPersonnel(ctx, batchID)
	if err != nil {
		return nil, err
	}
	collected := make(map[string]bool, len(personnel))
	for _, p := range personnel {
		collected[p.PersonnelID] = p.CollectionDone
	}

	details, err := s.batchRepo.FindBatchDetails(ctx, batchID)
	if err != nil {
		return nil, err
	}

	resp := dto.FinalizeBatchResponse{BatchID: batchID, PaidIDs: []string{}, RevertedIDs: []string{}}
	paidTotal := decimal.Zero
	for _, d := range details {
		if collected[d.PersonnelID] {
			resp.PaidIDs = append(resp.PaidIDs, d.AssignedServiceID)
			paidTotal = paidTotal.Add(d.Amount)
		} else {
			resp.RevertedIDs = append(resp.RevertedIDs, d.AssignedServiceID)
		}
	}

	now := time.Now()
	if err := s.batchRepo.FinalizeBatch(ctx, *batch, resp.PaidIDs, resp.RevertedIDs, paidTotal, req.ScheduledDate, requesterUserID, now); err != nil {
		return nil, err
	}

	logger.Info("Payment batch finalized",
		slog.String("batch_id", batchID),
		slog.Int("paid", len(resp.PaidIDs)),
		slog.Int("reverted", len(resp.RevertedIDs)))
	return &resp, nil
}

// VoidBatch cancels a batch and releases every frozen service back to
// PENDIENTE, already-paid ones included. Voiding is the escape hatch for
// settlement mistakes and works from every status except ANULADO itself.
func (s *PayrollService) VoidBatch(ctx context.Context, requesterUserID string, organizationID string, batchID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.authorizer.AuthorizeUserAction(ctx, requesterUserID, organizationID, adminRoles...); err != nil {
		return err
	}

	batch, err := s.findOwnedBatch(ctx, organizationID, batchID)
	if err != nil {
		return err
	}
	if batch.Status == domain.BatchVoided {
		return fmt.Errorf("batch is already voided: %w", apperrors.ErrConflict)
	}

	details, err := s.batchRepo.FindBatchDetails(ctx, batchID)
	if err != nil {
		return err
	}
	serviceIDs := make([]string, len(details))
	for i, d := range details {
		serviceIDs[i] = d.AssignedServiceID
	}

	if err := s.batchRepo.VoidBatch(ctx, *batch, serviceIDs, requesterUserID, time.Now()); err != nil {
		return err
	}
	logger.Info("Payment batch voided", slog.String("batch_id", batchID), slog.Int("released", len(serviceIDs)))
	return nil
}

// UpdateScheduledDate changes the planned payment date while the batch is
// still in preparation.
func (s *PayrollService) UpdateScheduledDate(ctx context.Context, requesterUserID string, organizationID string, batchID string, req dto.UpdateBatchDateRequest) (*domain.PaymentBatch, error) {
	if _, err := s.authorizer.AuthorizeUserAction(ctx, requesterUserID, organizationID, adminRoles...); err != nil {
		return nil, err
	}
	batch, err := s.findOwnedBatch(ctx, organizationID, batchID)
	if err != nil {
		return nil, err
	}
	if !batch.Status.AllowsDateUpdate() {
		return nil, fmt.Errorf("scheduled date is frozen in status %s: %w", batch.Status, apperrors.ErrConflict)
	}

	now := time.Now()
	if err := s.batchRepo.UpdateScheduledDate(ctx, batchID, req.ScheduledDate, requesterUserID, now); err != nil {
		return nil, err
	}
	batch.ScheduledDate = &req.ScheduledDate
	batch.LastUpdatedAt = now
	batch.LastUpdatedBy = requesterUserID
	return batch, nil
}

// ApproveBatch advances a batch one step along the approval chain:
// FINALIZADO moves to PENDIENTE_APROBACION, PENDIENTE_APROBACION to PAGADO.
func (s *PayrollService) ApproveBatch(ctx context.Context, requesterUserID string, organizationID string, batchID string) (*domain.PaymentBatch, error) {
	if _, err := s.authorizer.AuthorizeUserAction(ctx, requesterUserID, organizationID, adminRoles...); err != nil {
		return nil, err
	}
	batch, err := s.findOwnedBatch(ctx, organizationID, batchID)
	if err != nil {
		return nil, err
	}

	var next domain.BatchStatus
	switch batch.Status {
	case domain.BatchFinalized:
		next = domain.BatchPendingApproval
	case domain.BatchPendingApproval:
		next = domain.BatchPaid
	default:
		return nil, fmt.Errorf("batch in status %s cannot be approved: %w", batch.Status, apperrors.ErrConflict)
	}

	now := time.Now()
	if err := s.batchRepo.UpdateBatchStatus(ctx, batchID, next, batch.Version, requesterUserID, now); err != nil {
		return nil, err
	}
	batch.Status = next
	batch.LastUpdatedAt = now
	batch.LastUpdatedBy = requesterUserID
	return batch, nil
}

// ClaimBatch flags a settled batch as disputed by staff. Any organization
// member may claim; the dispute itself is resolved offline.
func (s *PayrollService) ClaimBatch(ctx context.Context, requesterUserID string, organizationID string, batchID string) (*domain.PaymentBatch, error) {
	if _, err := s.authorizer.AuthorizeUserAction(ctx, requesterUserID, organizationID); err != nil {
		return nil, err
	}
	batch, err := s.findOwnedBatch(ctx, organizationID, batchID)
	if err != nil {
		return nil, err
	}
	if batch.Status != domain.BatchFinalized && batch.Status != domain.BatchPendingApproval {
		return nil, fmt.Errorf("batch in status %s cannot be claimed: %w", batch.Status, apperrors.ErrConflict)
	}

	now := time.Now()
	if err := s.batchRepo.UpdateBatchStatus(ctx, batchID, domain.BatchClaimed, batch.Version, requesterUserID, now); err != nil {
		return nil, err
	}
	batch.Status = domain.BatchClaimed
	batch.LastUpdatedAt = now
	batch.LastUpdatedBy = requesterUserID
	return batch, nil
}

// ListMyPayments returns the requester's own rollups across non-voided
// batches. Available to every organization member regardless of role.
func (s *PayrollService) ListMyPayments(ctx context.Context, requesterUserID string, organizationID string) (*dto.ListMyPaymentsResponse, error) {
	if _, err := s.authorizer.AuthorizeUserAction(ctx, requesterUserID, organizationID); err != nil {
		return nil, err
	}

	personnel, err := s.personnelRepo.FindPersonnelByUserID(ctx, organizationID, requesterUserID)
	if err != nil {
		return nil, err
	}
	rollups, err := s.batchRepo.ListRollupsByPersonnel(ctx, organizationID, personnel.PersonnelID)
	if err != nil {
		return nil, err
	}
	resp := dto.ToListMyPaymentsResponse(rollups)
	return &resp, nil
}
