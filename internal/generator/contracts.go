package generator

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/beesaferoot/property-seed/internal/errs"
	"github.com/beesaferoot/property-seed/internal/models"
	"github.com/beesaferoot/property-seed/internal/random"
)

func (g *Generator) generateRegistrations() (int, error) {
	if len(g.ds.Apartments) == 0 {
		return 0, errs.DataIntegrity("property_registrations", "no apartments to register")
	}
	for _, apt := range g.ds.Apartments {
		start := g.rnd.Date(contractWindowStart, contractWindowEnd)
		contract := money(float64(apt.SizeSqft) * g.rnd.Uniform(80, 150))
		advance := contract.Mul(decimal.NewFromFloat(g.rnd.Uniform(0.05, 0.15))).Round(2)

		status := models.RegistrationExpired
		if start.After(activeAfter) {
			status = models.RegistrationActive
		}

		g.ds.Registrations = append(g.ds.Registrations, models.PropertyRegistration{
			RegistrationID:   len(g.ds.Registrations) + 1,
			ApartmentID:      apt.ApartmentID,
			EgarsiNumber:     fmt.Sprintf("EG%d", g.rnd.Between(100000, 999999)),
			RegistrationDate: start,
			ContractAmount:   contract,
			AdvancePayment:   advance,
			ContractStart:    start,
			ContractEnd:      addDays(start, contractDays),
			PaymentTerms:     random.Choice(g.rnd, paymentTerms),
			Status:           status,
		})
	}
	return len(g.ds.Registrations), nil
}

func (g *Generator) generateBrokerage() (int, error) {
	if len(g.ds.Registrations) == 0 {
		return 0, errs.DataIntegrity("brokerage", "no registrations to broker")
	}
	if len(g.ds.Brokers) == 0 {
		return 0, errs.DataIntegrity("brokerage", "no brokers to pay")
	}
	for _, reg := range g.ds.Registrations {
		if !g.rnd.Chance(brokerageChance) {
			continue
		}
		broker := random.Choice(g.rnd, g.ds.Brokers)
		g.ds.Brokerage = append(g.ds.Brokerage, models.Brokerage{
			BrokerageID:   len(g.ds.Brokerage) + 1,
			ApartmentID:   reg.ApartmentID,
			BrokerID:      broker.BrokerID,
			Amount:        reg.ContractAmount.Mul(decimal.NewFromFloat(g.rnd.Uniform(0.02, 0.05))).Round(2),
			PaymentDate:   addDays(reg.RegistrationDate, g.rnd.Between(1, 14)),
			PaymentMethod: random.Choice(g.rnd, paymentMethods),
			Status:        "Paid",
			ReceiptURL:    fmt.Sprintf("https://example.com/receipts/%s.pdf", g.rnd.String(16)),
		})
	}
	return len(g.ds.Brokerage), nil
}

func (g *Generator) generateCheques() (int, error) {
	if len(g.ds.Registrations) == 0 {
		return 0, errs.DataIntegrity("cheques", "no registrations to pay for")
	}
	if len(g.ds.Owners) == 0 {
		return 0, errs.DataIntegrity("cheques", "no owners to draw cheques to")
	}

	owners := make(map[int][]models.PropertyOwner)
	for _, o := range g.ds.Owners {
		owners[o.ApartmentID] = append(owners[o.ApartmentID], o)
	}

	for _, reg := range g.ds.Registrations {
		cheques, err := g.chequesFor(reg, g.rnd.Between(4, 12), owners[reg.ApartmentID], len(g.ds.Cheques)+1)
		if err != nil {
			return 0, err
		}
		g.ds.Cheques = append(g.ds.Cheques, cheques...)
	}
	return len(g.ds.Cheques), nil
}

// chequesFor amortizes the unpaid part of a contract over n post-dated
// cheques due every 30 days after the contract starts. Each amount is the
// even share perturbed by up to 10 percent, so the total only approximates
// the balance.
func (g *Generator) chequesFor(reg models.PropertyRegistration, n int, owners []models.PropertyOwner, firstID int) ([]models.Cheque, error) {
	if n <= 0 {
		return nil, errs.DataIntegrity("cheques", "cannot split registration %d into %d cheques", reg.RegistrationID, n)
	}
	if len(owners) == 0 {
		return nil, errs.DataIntegrity("cheques", "apartment %d has no owners", reg.ApartmentID)
	}

	base := reg.ContractAmount.Sub(reg.AdvancePayment).Div(decimal.NewFromInt(int64(n)))
	out := make([]models.Cheque, 0, n)
	for i := 0; i < n; i++ {
		due := addDays(reg.ContractStart, chequeSpacing*(i+1))
		cheque := models.Cheque{
			ChequeID:     firstID + i,
			ApartmentID:  reg.ApartmentID,
			ChequeNumber: fmt.Sprintf("CHQ%d", g.rnd.Between(100000, 999999)),
			BankName:     random.Choice(g.rnd, banks),
			AccountName:  fmt.Sprintf("Owner %d", random.Choice(g.rnd, owners).OwnerID),
			Amount:       base.Mul(decimal.NewFromFloat(g.rnd.Uniform(0.9, 1.1))).Round(2),
			IssueDate:    reg.ContractStart,
			DueDate:      due,
			Status:       models.ChequePending,
			ImageURL:     fmt.Sprintf("https://example.com/cheques/%s.jpg", g.rnd.String(16)),
		}
		if due.Before(g.now) {
			deposited := due
			cheque.Status = models.ChequeCleared
			cheque.DepositDate = &deposited
		}
		out = append(out, cheque)
	}
	return out, nil
}
