package service

import (
	"context"
	"fmt"
	"time"

	"github.com/billcraft/billcraft/internal/api/dto"
	"github.com/billcraft/billcraft/internal/domain/invoice"
	ierr "github.com/billcraft/billcraft/internal/errors"
	"github.com/billcraft/billcraft/internal/types"
)

// InvoiceService orchestrates the invoice lifecycle against the upstream
// persistence API: header and line item writes, the proforma to final
// transition, and the print-and-confirm flow.
type InvoiceService interface {
	CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error)
	GetInvoice(ctx context.Context, id string) (*dto.InvoiceResponse, error)
	ListInvoices(ctx context.Context, filter *types.InvoiceFilter) (*dto.ListInvoicesResponse, error)
	UpdateInvoice(ctx context.Context, id string, req dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error)
	DeleteInvoice(ctx context.Context, id string) error
	RemoveLineItem(ctx context.Context, invoiceID, itemID string) (*dto.InvoiceResponse, error)
	FinalizeInvoice(ctx context.Context, id string) (*dto.FinalizeInvoiceResponse, error)
	ResolvePrint(ctx context.Context, id string, confirmed bool) (*dto.InvoiceResponse, error)
	RevertToProforma(ctx context.Context, id string) (*dto.InvoiceResponse, error)
}

type invoiceService struct {
	ServiceParams
}

func NewInvoiceService(params ServiceParams) InvoiceService {
	return &invoiceService{ServiceParams: params}
}

func (s *invoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	inv, err := s.buildInvoice(ctx, &req, nil)
	if err != nil {
		return nil, err
	}

	inv.ID = types.GenerateUUIDWithPrefix(types.UUID_PREFIX_INVOICE)
	inv.LifecycleState = types.LifecycleProforma
	inv.BaseModel = types.GetDefaultBaseModel(ctx)
	inv.InvoiceNumber = s.resolveInvoiceNumber(ctx, req.InvoiceNumber)

	if err := inv.Recalculate(); err != nil {
		return nil, err
	}
	if err := inv.Validate(); err != nil {
		return nil, err
	}

	if err := s.InvoiceRepo.Create(ctx, inv); err != nil {
		return nil, err
	}
	s.Logger.Infow("created invoice header",
		"invoice_id", inv.ID,
		"invoice_number", inv.InvoiceNumber,
		"items", len(inv.LineItems))

	// Header first, then every item exactly once. A failed item never
	// aborts the loop; the per-item outcome is reported to the caller.
	ppe := &invoice.PartialPersistError{InvoiceID: inv.ID, Failed: map[string]error{}}
	for _, item := range inv.LineItems {
		item.InvoiceID = inv.ID
		if err := s.LineItemRepo.Create(ctx, item); err != nil {
			s.Logger.Errorw("failed to persist line item", "invoice_id", inv.ID, "item_name", item.Name, "error", err)
			ppe.Failed[item.Name] = err
			continue
		}
		ppe.Succeeded = append(ppe.Succeeded, item.ID)
	}
	if len(ppe.Failed) > 0 {
		return nil, invoice.NewPartialPersistError(ppe)
	}

	return dto.NewInvoiceResponse(inv)
}

func (s *invoiceService) GetInvoice(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := s.InvoiceRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewInvoiceResponse(inv)
}

func (s *invoiceService) ListInvoices(ctx context.Context, filter *types.InvoiceFilter) (*dto.ListInvoicesResponse, error) {
	if filter == nil {
		filter = types.NewInvoiceFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	invoices, err := s.InvoiceRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.InvoiceRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		resp, err := dto.NewInvoiceResponse(inv)
		if err != nil {
			return nil, err
		}
		items = append(items, resp)
	}
	return &dto.ListInvoicesResponse{Items: items, Total: total}, nil
}

func (s *invoiceService) UpdateInvoice(ctx context.Context, id string, req dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	existing, err := s.InvoiceRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !existing.IsEditable() {
		return nil, newNotEditableError(existing)
	}
	persisted := existing.LineItems

	inv, err := s.buildInvoice(ctx, &req, existing)
	if err != nil {
		return nil, err
	}
	if err := inv.Recalculate(); err != nil {
		return nil, err
	}
	if err := inv.Validate(); err != nil {
		return nil, err
	}

	if err := s.InvoiceRepo.Update(ctx, inv); err != nil {
		return nil, err
	}

	diff := invoice.DiffLineItems(persisted, inv.LineItems)
	s.Logger.Infow("reconciling invoice items",
		"invoice_id", inv.ID,
		"create", len(diff.ToCreate),
		"update", len(diff.ToUpdate),
		"delete", len(diff.ToDelete))

	ppe := &invoice.PartialPersistError{InvoiceID: inv.ID, Failed: map[string]error{}}
	for _, item := range diff.ToCreate {
		item.InvoiceID = inv.ID
		if err := s.LineItemRepo.Create(ctx, item); err != nil {
			ppe.Failed[item.Name] = err
			continue
		}
		ppe.Succeeded = append(ppe.Succeeded, item.ID)
	}
	for _, item := range diff.ToUpdate {
		item.InvoiceID = inv.ID
		if err := s.LineItemRepo.Update(ctx, item); err != nil {
			ppe.Failed[item.ID] = err
			continue
		}
		ppe.Succeeded = append(ppe.Succeeded, item.ID)
	}
	for _, itemID := range diff.ToDelete {
		if err := s.LineItemRepo.Delete(ctx, itemID); err != nil {
			ppe.Failed[itemID] = err
			continue
		}
		ppe.Succeeded = append(ppe.Succeeded, itemID)
	}
	if len(ppe.Failed) > 0 {
		return nil, invoice.NewPartialPersistError(ppe)
	}

	return dto.NewInvoiceResponse(inv)
}

func (s *invoiceService) DeleteInvoice(ctx context.Context, id string) error {
	inv, err := s.InvoiceRepo.Get(ctx, id)
	if err != nil {
		return err
	}
	if inv.LifecycleState == types.LifecycleFinalSaved {
		return ierr.NewError("cannot delete a saved final invoice").
			WithHint("Revert the invoice to proforma before deleting it").
			WithReportableDetails(map[string]any{
				"invoice_id": id,
			}).
			Mark(ierr.ErrInvalidOperation)
	}
	return s.InvoiceRepo.Delete(ctx, id)
}

// RemoveLineItem deletes one persisted item. The backend delete must
// succeed before the item leaves the invoice; on failure the invoice is
// returned unchanged with the error.
func (s *invoiceService) RemoveLineItem(ctx context.Context, invoiceID, itemID string) (*dto.InvoiceResponse, error) {
	inv, err := s.InvoiceRepo.Get(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if !inv.IsEditable() {
		return nil, newNotEditableError(inv)
	}

	idx := -1
	for i, item := range inv.LineItems {
		if item.ID == itemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ierr.NewError("line item not found").
			WithHintf("Invoice has no item %s", itemID).
			Mark(ierr.ErrNotFound)
	}

	if err := s.LineItemRepo.Delete(ctx, itemID); err != nil {
		return nil, err
	}

	inv.LineItems = append(inv.LineItems[:idx], inv.LineItems[idx+1:]...)
	if err := inv.Recalculate(); err != nil {
		return nil, err
	}
	if err := s.InvoiceRepo.Update(ctx, inv); err != nil {
		return nil, err
	}
	return dto.NewInvoiceResponse(inv)
}

// FinalizeInvoice moves a proforma invoice to final-pending and opens a
// print session. No final number is assigned until the print is confirmed.
func (s *invoiceService) FinalizeInvoice(ctx context.Context, id string) (*dto.FinalizeInvoiceResponse, error) {
	inv, err := s.InvoiceRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := inv.MarkFinalPending(); err != nil {
		return nil, err
	}
	if err := s.InvoiceRepo.Update(ctx, inv); err != nil {
		return nil, err
	}

	printRef := types.GenerateShortIDWithPrefix(types.SHORT_ID_PREFIX_PRINT_SESSION)
	s.Logger.Infow("invoice finalized, awaiting print confirmation",
		"invoice_id", inv.ID, "print_session_ref", printRef)

	resp, err := dto.NewInvoiceResponse(inv)
	if err != nil {
		return nil, err
	}
	return &dto.FinalizeInvoiceResponse{Invoice: resp, PrintSessionRef: printRef}, nil
}

// ResolvePrint completes the print flow of a final-pending invoice. A
// confirmed print draws the final number from the branch sequence and
// saves the invoice as final; a cancelled print routes it back to
// proforma without consuming a number.
func (s *invoiceService) ResolvePrint(ctx context.Context, id string, confirmed bool) (*dto.InvoiceResponse, error) {
	inv, err := s.InvoiceRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if confirmed {
		// Branch sequence values are never reused, so the transition must
		// be verified before a number is drawn. Confirming an invoice that
		// is not final-pending would otherwise leave a gap in the sequence.
		if !inv.LifecycleState.CanTransition(types.LifecycleFinalSaved) {
			return nil, invoice.NewIllegalTransitionError(
				inv.LifecycleState.String(), types.LifecycleFinalSaved.String())
		}
		finalNumber, err := s.BranchRepo.NextFinalInvoiceNumber(ctx, inv.BranchID)
		if err != nil {
			return nil, ierr.WithError(err).
				WithHint("Could not issue a final invoice number for the branch").
				Mark(ierr.ErrExternalLookup)
		}
		if err := inv.ConfirmFinal(finalNumber); err != nil {
			return nil, err
		}
		s.Logger.Infow("invoice confirmed final",
			"invoice_id", inv.ID, "final_invoice_number", finalNumber)
	} else {
		if err := inv.CancelFinal(); err != nil {
			return nil, err
		}
		s.Logger.Infow("print cancelled, invoice back to proforma", "invoice_id", inv.ID)
	}

	if err := s.InvoiceRepo.Update(ctx, inv); err != nil {
		return nil, err
	}
	return dto.NewInvoiceResponse(inv)
}

func (s *invoiceService) RevertToProforma(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := s.InvoiceRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := inv.RevertToProforma(); err != nil {
		return nil, err
	}
	if err := s.InvoiceRepo.Update(ctx, inv); err != nil {
		return nil, err
	}
	return dto.NewInvoiceResponse(inv)
}

// buildInvoice assembles the aggregate from a request. When existing is
// non-nil the identity, number, and lifecycle fields are carried over and
// only user-editable fields are replaced.
func (s *invoiceService) buildInvoice(ctx context.Context, req *dto.CreateInvoiceRequest, existing *invoice.Invoice) (*invoice.Invoice, error) {
	invoiceDate, dueDate, err := req.ParseDates()
	if err != nil {
		return nil, err
	}

	// Referenced entities live upstream; a dangling reference is caught
	// here instead of surfacing as an opaque write failure later.
	if _, err := s.ClientRepo.Get(ctx, req.ClientID); err != nil {
		return nil, err
	}
	if _, err := s.BranchRepo.Get(ctx, req.BranchID); err != nil {
		return nil, err
	}
	if _, err := s.BankAccountRepo.Get(ctx, req.BankAccountID); err != nil {
		return nil, err
	}

	inv := &invoice.Invoice{
		InvoiceType:   req.InvoiceType,
		ClientID:      req.ClientID,
		BranchID:      req.BranchID,
		BankAccountID: req.BankAccountID,
		InvoiceDate:   invoiceDate,
		DueDate:       dueDate,
		Currency:      req.Currency,
		PaymentTerms:  req.PaymentTerms,
		TaxOption:     req.TaxOption,
		Discount:      req.Discount,
		Shipping:      req.Shipping,
		AmountPaid:    req.AmountPaid,
	}
	if existing != nil {
		inv.ID = existing.ID
		inv.InvoiceNumber = existing.InvoiceNumber
		inv.FinalInvoiceNumber = existing.FinalInvoiceNumber
		inv.LifecycleState = existing.LifecycleState
		inv.BaseModel = existing.BaseModel
		inv.InvoiceType = existing.InvoiceType
		if err := inv.ChangeType(req.InvoiceType); err != nil {
			return nil, err
		}
	}

	if req.TaxOption == types.TaxOptionYes {
		if req.TaxRateID == "" {
			return nil, invoice.NewValidationError("tax_rate_id", "is required when tax option is yes")
		}
		rate, err := s.TaxRateRepo.Get(ctx, req.TaxRateID)
		if err != nil {
			return nil, err
		}
		inv.TaxRate = &rate.Percentage
		inv.TaxName = rate.Name
	}

	items, err := s.resolveLineItems(ctx, req)
	if err != nil {
		return nil, err
	}
	inv.LineItems = items
	return inv, nil
}

// resolveLineItems turns request rows into domain items. Product costs
// come from the catalog and are authoritative; a failed catalog lookup
// refuses the item rather than guessing a price. Service costs are user
// supplied, falling back to the catalog default when omitted.
func (s *invoiceService) resolveLineItems(ctx context.Context, req *dto.CreateInvoiceRequest) ([]*invoice.LineItem, error) {
	items := make([]*invoice.LineItem, 0, len(req.Items))
	for _, row := range req.Items {
		item := &invoice.LineItem{
			ID:       row.ID,
			ItemType: row.ItemType,
			Name:     row.Name,
			Quantity: row.Quantity,
		}

		switch row.ItemType {
		case types.ItemTypeProduct:
			entry, err := s.CatalogRepo.GetByName(ctx, row.ItemType, row.Name)
			if err != nil {
				return nil, err
			}
			item.UnitCost = entry.UnitCost
		case types.ItemTypeService:
			if row.UnitCost != nil {
				item.UnitCost = *row.UnitCost
			} else {
				entry, err := s.CatalogRepo.GetByName(ctx, row.ItemType, row.Name)
				if err != nil {
					return nil, err
				}
				item.UnitCost = entry.UnitCost
			}
		default:
			if err := row.ItemType.Validate(); err != nil {
				return nil, err
			}
		}

		items = append(items, item)
	}
	return items, nil
}

// resolveInvoiceNumber returns the caller-supplied number, or the next
// sequential number, or a timestamp fallback when the sequence endpoint
// is unavailable. Invoice creation must not fail on numbering alone.
func (s *invoiceService) resolveInvoiceNumber(ctx context.Context, requested string) string {
	if requested != "" {
		return requested
	}
	number, err := s.NumberingRepo.NextProformaNumber(ctx)
	if err != nil {
		fallback := fmt.Sprintf("%s-%d", s.Config.Invoice.NumberPrefix, time.Now().Unix())
		s.Logger.Warnw("proforma number sequence unavailable, using fallback",
			"fallback", fallback, "error", err)
		return fallback
	}
	return number
}

func newNotEditableError(inv *invoice.Invoice) error {
	return ierr.NewError("invoice is not editable").
		WithHint("A saved final invoice cannot be modified; revert it to proforma first").
		WithReportableDetails(map[string]any{
			"invoice_id":      inv.ID,
			"lifecycle_state": inv.LifecycleState,
		}).
		Mark(ierr.ErrInvalidOperation)
}
