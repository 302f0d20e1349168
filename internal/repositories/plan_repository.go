package repositories

import (
	"skenk/internal/config"
	"skenk/pkg/utils"
)

type PlanInterval string

const (
	IntervalMonthly  PlanInterval = "monthly"
	IntervalAnnually PlanInterval = "annually"
	IntervalOneOff   PlanInterval = "one-off"
)

// DonationPlan is an immutable catalog entry. PlanCode is the provider-side
// recurring-billing identifier and is only set for recurring intervals.
type DonationPlan struct {
	ID          string
	Name        string
	Amount      int
	Currency    string
	Interval    PlanInterval
	PlanCode    string
	Description string
}

type IPlanRepository interface {
	GetPlanByID(id string) (*DonationPlan, error)
	GetPlanByCode(code string) (*DonationPlan, error)
	ListPlans() []DonationPlan
}

type PlanRepository struct {
	plans []DonationPlan
	byID  map[string]DonationPlan
}

// NewPlanRepository builds the fixed catalog once at startup. Recurring plan
// codes can be overridden per plan through PLAN_* environment variables.
func NewPlanRepository() IPlanRepository {
	plans := buildCatalog()

	byID := make(map[string]DonationPlan, len(plans))
	for _, plan := range plans {
		byID[plan.ID] = plan
	}

	return &PlanRepository{
		plans: plans,
		byID:  byID,
	}
}

func (p *PlanRepository) GetPlanByID(id string) (*DonationPlan, error) {
	plan, ok := p.byID[id]
	if !ok {
		return nil, utils.ErrInvalidPlan
	}
	return &plan, nil
}

func (p *PlanRepository) GetPlanByCode(code string) (*DonationPlan, error) {
	if code == "" {
		return nil, utils.ErrInvalidPlan
	}
	for _, plan := range p.plans {
		if plan.PlanCode == code {
			found := plan
			return &found, nil
		}
	}
	return nil, utils.ErrInvalidPlan
}

func (p *PlanRepository) ListPlans() []DonationPlan {
	out := make([]DonationPlan, len(p.plans))
	copy(out, p.plans)
	return out
}

func buildCatalog() []DonationPlan {
	monthly := []DonationPlan{
		recurringPlan("monthly-100", "R100 Monthly", 100, IntervalMonthly, "PLAN_MONTHLY_100", "PLN_6esb90pg4anp9zq", "Support with R100 monthly"),
		recurringPlan("monthly-200", "R200 Monthly", 200, IntervalMonthly, "PLAN_MONTHLY_200", "PLN_gbdvu0avcfc0pam", "Support with R200 monthly"),
		recurringPlan("monthly-500", "R500 Monthly", 500, IntervalMonthly, "PLAN_MONTHLY_500", "PLN_cxf9b3batni3vbw", "Support with R500 monthly"),
		recurringPlan("monthly-1000", "R1,000 Monthly", 1000, IntervalMonthly, "PLAN_MONTHLY_1000", "PLN_pjim6eus6gb4cps", "Support with R1,000 monthly"),
		recurringPlan("monthly-2000", "R2,000 Monthly", 2000, IntervalMonthly, "PLAN_MONTHLY_2000", "PLN_3qmpozj5pw7zywn", "Support with R2,000 monthly"),
		recurringPlan("monthly-5000", "R5,000 Monthly", 5000, IntervalMonthly, "PLAN_MONTHLY_5000", "PLN_wbvihpcg770t4et", "Support with R5,000 monthly"),
	}

	annual := []DonationPlan{
		recurringPlan("annual-1200", "R1,200 Annually", 1200, IntervalAnnually, "PLAN_ANNUAL_1200", "PLN_95wv2r523jlipyo", "Support with R1,200 annually"),
		recurringPlan("annual-2400", "R2,400 Annually", 2400, IntervalAnnually, "PLAN_ANNUAL_2400", "PLN_71kwj3au6tcys9p", "Support with R2,400 annually"),
		recurringPlan("annual-6000", "R6,000 Annually", 6000, IntervalAnnually, "PLAN_ANNUAL_6000", "PLN_zc8fhee0zlrwtqf", "Support with R6,000 annually"),
		recurringPlan("annual-12000", "R12,000 Annually", 12000, IntervalAnnually, "PLAN_ANNUAL_12000", "PLN_bm2ybbv7m421xbv", "Support with R12,000 annually"),
		recurringPlan("annual-15000", "R15,000 Annually", 15000, IntervalAnnually, "PLAN_ANNUAL_15000", "PLN_2yp34fcr8vj03j5", "Support with R15,000 annually"),
		recurringPlan("annual-20000", "R20,000 Annually", 20000, IntervalAnnually, "PLAN_ANNUAL_20000", "PLN_ecx205ldzx198yh", "Support with R20,000 annually"),
	}

	oneOff := []DonationPlan{
		oneOffPlan("one-off-1000", "R1,000 One-Off", 1000, "Support with R1,000 one-time donation"),
		oneOffPlan("one-off-2000", "R2,000 One-Off", 2000, "Support with R2,000 one-time donation"),
		oneOffPlan("one-off-3000", "R3,000 One-Off", 3000, "Support with R3,000 one-time donation"),
		oneOffPlan("one-off-4000", "R4,000 One-Off", 4000, "Support with R4,000 one-time donation"),
		oneOffPlan("one-off-5000", "R5,000 One-Off", 5000, "Support with R5,000 one-time donation"),
		oneOffPlan("one-off-10000", "R10,000 One-Off", 10000, "Support with R10,000 one-time donation"),
	}

	plans := make([]DonationPlan, 0, len(monthly)+len(annual)+len(oneOff))
	plans = append(plans, monthly...)
	plans = append(plans, annual...)
	plans = append(plans, oneOff...)
	return plans
}

func recurringPlan(id, name string, amount int, interval PlanInterval, envKey, fallbackCode, description string) DonationPlan {
	return DonationPlan{
		ID:          id,
		Name:        name,
		Amount:      amount,
		Currency:    "ZAR",
		Interval:    interval,
		PlanCode:    config.PlanCodeOverride(envKey, fallbackCode),
		Description: description,
	}
}

func oneOffPlan(id, name string, amount int, description string) DonationPlan {
	return DonationPlan{
		ID:          id,
		Name:        name,
		Amount:      amount,
		Currency:    "ZAR",
		Interval:    IntervalOneOff,
		Description: description,
	}
}
