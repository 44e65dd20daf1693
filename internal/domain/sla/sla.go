// Package sla derives elapsed and remaining-day metrics for an active requisition.
package sla

import (
	"math"
	"time"

	"compras_xpto/internal/domain/entities"
)

const (
	// ApprovalWarningDays flags requisitions that sat approved for too long.
	ApprovalWarningDays = 2
	// QuotingCriticalDays flags quoting that took too long.
	QuotingCriticalDays = 5
	// DeliveryWarningDays flags deliveries that are about to be due.
	DeliveryWarningDays = 1
)

type Severity string

const (
	SeverityOK       Severity = "ok"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Info is the SLA snapshot of one requisition. Nil day counters mean "not tracked".
type Info struct {
	SinceApproval *int `json:"since_approval"`
	// SinceQuoting counts from aprovado_em.
	SinceQuoting  *int `json:"since_quoting"`
	UntilDelivery *int `json:"until_delivery"`
	IsOverdue     bool `json:"is_overdue"`
	OverdueBy     int  `json:"overdue_by"`
}

const day = 24 * time.Hour

// Evaluate computes the SLA snapshot of r at now. Terminal requisitions are not tracked.
func Evaluate(r entities.Requisicao, now time.Time) Info {
	var info Info
	if r.Status.IsTerminal() {
		return info
	}

	if r.AprovadoEm != nil {
		d := daysSince(*r.AprovadoEm, now)
		info.SinceApproval = &d
		if r.Status == entities.StatusCotando || r.Status == entities.StatusComprado {
			q := d
			info.SinceQuoting = &q
		}
	}

	if r.PrevisaoEntrega != nil {
		diff := r.PrevisaoEntrega.Sub(now)
		until := int(math.Ceil(diff.Hours() / 24))
		if diff < 0 {
			info.IsOverdue = true
			info.OverdueBy = -until
			if info.OverdueBy < 1 {
				info.OverdueBy = 1
			}
		} else {
			info.UntilDelivery = &until
		}
	}
	return info
}

// Classify maps an SLA snapshot to a dashboard severity.
func Classify(info Info) Severity {
	if info.IsOverdue {
		return SeverityCritical
	}
	if info.SinceQuoting != nil && *info.SinceQuoting > QuotingCriticalDays {
		return SeverityCritical
	}
	if info.SinceApproval != nil && *info.SinceApproval > ApprovalWarningDays {
		return SeverityWarning
	}
	if info.UntilDelivery != nil && *info.UntilDelivery <= DeliveryWarningDays {
		return SeverityWarning
	}
	return SeverityOK
}

func daysSince(from, now time.Time) int {
	return int(math.Floor(float64(now.Sub(from)) / float64(day)))
}
