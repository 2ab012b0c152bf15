package domain_test

import (
	"testing"

	"github.com/eventstaff/esa_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAssignedService_PayableAmount(t *testing.T) {
	pactado := decimal.NewFromFloat(100.00)

	tests := []struct {
		name        string
		attendance  domain.AttendanceState
		discountPct decimal.Decimal
		want        decimal.Decimal
	}{
		{
			name:        "absent pays nothing regardless of discount",
			attendance:  domain.AttendanceAbsent,
			discountPct: decimal.NewFromInt(25),
			want:        decimal.Zero,
		},
		{
			name:        "late with 25 percent discount",
			attendance:  domain.AttendanceLate,
			discountPct: decimal.NewFromInt(25),
			want:        decimal.NewFromFloat(75.00),
		},
		{
			name:        "late with no discount pays in full",
			attendance:  domain.AttendanceLate,
			discountPct: decimal.Zero,
			want:        pactado,
		},
		{
			name:        "punctual ignores discount",
			attendance:  domain.AttendancePunctual,
			discountPct: decimal.NewFromInt(50),
			want:        pactado,
		},
		{
			name:        "still assigned pays agreed amount",
			attendance:  domain.AttendanceAssigned,
			discountPct: decimal.Zero,
			want:        pactado,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := domain.AssignedService{AgreedAmount: pactado, Attendance: tt.attendance}
			got := svc.PayableAmount(tt.discountPct)
			assert.True(t, tt.want.Equal(got), "want %s got %s", tt.want, got)
		})
	}
}

func TestAttendanceState_StampsArrival(t *testing.T) {
	assert.True(t, domain.AttendancePunctual.StampsArrival())
	assert.True(t, domain.AttendanceLate.StampsArrival())
	assert.False(t, domain.AttendanceAssigned.StampsArrival())
	assert.False(t, domain.AttendanceAbsent.StampsArrival())
}

func TestBatchStatus_AllowsDateUpdate(t *testing.T) {
	assert.True(t, domain.BatchInPreparation.AllowsDateUpdate())
	assert.False(t, domain.BatchFinalized.AllowsDateUpdate())
	assert.False(t, domain.BatchVoided.AllowsDateUpdate())
}
