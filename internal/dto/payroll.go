package dto

import (
	"time"

	"github.com/eventstaff/esa_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// --- Pending-payment aggregation ---

// PendingServiceEntry is one pending assigned service on a completed
// contract, with the advisory payable amount already computed.
type PendingServiceEntry struct {
	AssignedServiceID string                 `json:"assignedServiceID"`
	ServiceTypeName   string                 `json:"serviceTypeName"`
	AgreedAmount      decimal.Decimal        `json:"agreedAmount"`
	PayableAmount     decimal.Decimal        `json:"payableAmount"`
	Attendance        domain.AttendanceState `json:"attendance"`
	ContractID        string                 `json:"contractID"`
	ContractDate      time.Time              `json:"contractDate"`
	ContractTypeName  string                 `json:"contractTypeName"`
}

// PendingPersonnelGroup groups the pending services of one staff member.
type PendingPersonnelGroup struct {
	PersonnelID   string                `json:"personnelID"`
	PersonnelName string                `json:"personnelName"`
	Total         decimal.Decimal       `json:"total"`
	Services      []PendingServiceEntry `json:"services"`
}

// ListPendingServicesResponse is the aggregator output, grouped per staff member.
type ListPendingServicesResponse struct {
	Groups []PendingPersonnelGroup `json:"groups"`
}

// --- Batch lifecycle ---

// BatchServiceSelection names one assigned service to freeze into a batch,
// with the attendance discount the admin settled on during review.
type BatchServiceSelection struct {
	AssignedServiceID string          `json:"assignedServiceID" binding:"required"`
	DiscountPct       decimal.Decimal `json:"discountPct"` // 0..100, only meaningful for TARDE
}

// CreateBatchRequest defines data for freezing pending services into a batch.
type CreateBatchRequest struct {
	Name          string                  `json:"name" binding:"required"`
	ScheduledDate *time.Time              `json:"scheduledDate"`
	Services      []BatchServiceSelection `json:"services" binding:"required,min=1,dive"`
}

// ToggleCollectionRequest flips the collection flag for one staff member.
type ToggleCollectionRequest struct {
	CollectionDone *bool `json:"collectionDone" binding:"required"`
}

// FinalizeBatchRequest settles a batch; the scheduled date may be set one
// last time here.
type FinalizeBatchRequest struct {
	ScheduledDate *time.Time `json:"scheduledDate"`
}

// FinalizeBatchResponse reports the per-service partition of a finalize.
type FinalizeBatchResponse struct {
	BatchID     string   `json:"batchID"`
	PaidIDs     []string `json:"paidIDs"`
	RevertedIDs []string `json:"revertedIDs"`
}

// UpdateBatchDateRequest changes the scheduled payment date.
type UpdateBatchDateRequest struct {
	ScheduledDate time.Time `json:"scheduledDate" binding:"required"`
}

// BatchResponse defines data returned for a payment batch.
type BatchResponse struct {
	BatchID       string             `json:"batchID"`
	Name          string             `json:"name"`
	Status        domain.BatchStatus `json:"status"`
	TotalAmount   decimal.Decimal    `json:"totalAmount"`
	ScheduledDate *time.Time         `json:"scheduledDate,omitempty"`
	CreatedAt     time.Time          `json:"createdAt"`
	CreatedBy     string             `json:"createdBy"`
}

// ToBatchResponse converts domain.PaymentBatch to DTO.
func ToBatchResponse(b *domain.PaymentBatch) BatchResponse {
	return BatchResponse{
		BatchID:       b.BatchID,
		Name:          b.Name,
		Status:        b.Status,
		TotalAmount:   b.TotalAmount,
		ScheduledDate: b.ScheduledDate,
		CreatedAt:     b.CreatedAt,
		CreatedBy:     b.CreatedBy,
	}
}

// ListBatchesResponse wraps a list of payment batches.
type ListBatchesResponse struct {
	Batches []BatchResponse `json:"batches"`
}

// ToListBatchesResponse converts a slice of domain.PaymentBatch to DTO.
func ToListBatchesResponse(bs []domain.PaymentBatch) ListBatchesResponse {
	list := make([]BatchResponse, len(bs))
	for i := range bs {
		list[i] = ToBatchResponse(&bs[i])
	}
	return ListBatchesResponse{Batches: list}
}

// BatchDetailResponse is one snapshotted service line within a batch.
type BatchDetailResponse struct {
	DetailID          string                 `json:"detailID"`
	AssignedServiceID string                 `json:"assignedServiceID"`
	PersonnelID       string                 `json:"personnelID"`
	PersonnelName     string                 `json:"personnelName,omitempty"`
	ServiceTypeName   string                 `json:"serviceTypeName,omitempty"`
	Amount            decimal.Decimal        `json:"amount"`
	DiscountPct       decimal.Decimal        `json:"discountPct"`
	Attendance        domain.AttendanceState `json:"attendance"`
}

// BatchPersonnelResponse is the per-person rollup within a batch.
type BatchPersonnelResponse struct {
	PersonnelID    string          `json:"personnelID"`
	PersonnelName  string          `json:"personnelName,omitempty"`
	ShareAmount    decimal.Decimal `json:"shareAmount"`
	CollectionDone bool            `json:"collectionDone"`
}

// GetBatchResponse is the full batch view: header, details and rollups.
type GetBatchResponse struct {
	Batch     BatchResponse            `json:"batch"`
	Details   []BatchDetailResponse    `json:"details"`
	Personnel []BatchPersonnelResponse `json:"personnel"`
}

// ToGetBatchResponse assembles the full batch view from domain objects.
func ToGetBatchResponse(b *domain.PaymentBatch, details []domain.PaymentBatchDetail, personnel []domain.PaymentBatchPersonnel) GetBatchResponse {
	resp := GetBatchResponse{
		Batch:     ToBatchResponse(b),
		Details:   make([]BatchDetailResponse, len(details)),
		Personnel: make([]BatchPersonnelResponse, len(personnel)),
	}
	for i, d := range details {
		resp.Details[i] = BatchDetailResponse{
			DetailID:          d.DetailID,
			AssignedServiceID: d.AssignedServiceID,
			PersonnelID:       d.PersonnelID,
			PersonnelName:     d.PersonnelName,
			ServiceTypeName:   d.ServiceTypeName,
			Amount:            d.Amount,
			DiscountPct:       d.DiscountPct,
			Attendance:        d.Attendance,
		}
	}
	for i, p := range personnel {
		resp.Personnel[i] = BatchPersonnelResponse{
			PersonnelID:    p.PersonnelID,
			PersonnelName:  p.PersonnelName,
			ShareAmount:    p.ShareAmount,
			CollectionDone: p.CollectionDone,
		}
	}
	return resp
}

// MyPaymentEntry is one batch rollup visible to the staff member it belongs
// to. Voided batches never appear here.
type MyPaymentEntry struct {
	BatchID        string             `json:"batchID"`
	BatchName      string             `json:"batchName"`
	BatchStatus    domain.BatchStatus `json:"batchStatus"`
	ShareAmount    decimal.Decimal    `json:"shareAmount"`
	CollectionDone bool               `json:"collectionDone"`
	ScheduledDate  *time.Time         `json:"scheduledDate,omitempty"`
}

// ListMyPaymentsResponse wraps a staff member's payment history.
type ListMyPaymentsResponse struct {
	Payments []MyPaymentEntry `json:"payments"`
}

// ToListMyPaymentsResponse converts batch personnel rollups to the staff view.
func ToListMyPaymentsResponse(rollups []domain.PaymentBatchPersonnel) ListMyPaymentsResponse {
	list := make([]MyPaymentEntry, len(rollups))
	for i, r := range rollups {
		list[i] = MyPaymentEntry{
			BatchID:        r.BatchID,
			BatchName:      r.BatchName,
			BatchStatus:    r.BatchStatus,
			ShareAmount:    r.ShareAmount,
			CollectionDone: r.CollectionDone,
			ScheduledDate:  r.ScheduledDate,
		}
	}
	return ListMyPaymentsResponse{Payments: list}
}
