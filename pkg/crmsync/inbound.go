package crmsync

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/dealpage/dealpage/ent"
	"github.com/dealpage/dealpage/ent/crmcontact"
	"github.com/dealpage/dealpage/ent/crmintegration"
	"github.com/dealpage/dealpage/ent/proposal"
	"github.com/dealpage/dealpage/ent/webhooklog"
	"github.com/dealpage/dealpage/pkg/crm"
	"github.com/dealpage/dealpage/pkg/logger"
	"github.com/dealpage/dealpage/pkg/metrics"
)

// errDiscarded marks events that are valid but not actionable: unknown
// account, unmapped stage, unrecognized type. They are audited with the
// reason, never surfaced as errors.
var errDiscarded = errors.New("event discarded")

func discard(reason string) error {
	return fmt.Errorf("%w: %s", errDiscarded, reason)
}

// ProposalNotifier is invoked after an inbound event changes a proposal's
// status, so downstream automations (emails, activity feed) can react.
type ProposalNotifier interface {
	NotifyStatusChanged(ctx context.Context, proposalID int, status string)
}

// Processor handles provider webhooks: signature check, event
// classification, integration resolution and routing. The HTTP layer
// acknowledges with 200 regardless of what happens here, because providers
// treat delivery failures as grounds for aggressive retries.
type Processor struct {
	db       *ent.Client
	registry *crm.Registry
	links    *crm.LinkRegistry
	stages   *crm.StageMappingStore
	notifier ProposalNotifier
	metrics  *metrics.Metrics
	log      logger.Logger
}

// NewProcessor creates the inbound processor. notifier and m may be nil.
func NewProcessor(db *ent.Client, registry *crm.Registry, links *crm.LinkRegistry, stages *crm.StageMappingStore, notifier ProposalNotifier, m *metrics.Metrics, log logger.Logger) *Processor {
	return &Processor{
		db:       db,
		registry: registry,
		links:    links,
		stages:   stages,
		notifier: notifier,
		metrics:  m,
		log:      log,
	}
}

// Process runs one webhook delivery through verify, classify and route.
// The returned error is diagnostic only; callers must still acknowledge
// the delivery. A signature failure discards the payload before anything
// is persisted: unverified content is never trusted, not even for logging.
func (p *Processor) Process(ctx context.Context, provider crm.Provider, header http.Header, body []byte, requestURL string) error {
	adapter, err := p.registry.ForProvider(provider)
	if err != nil {
		return err
	}

	if err := adapter.VerifyWebhookSignature(header, body, requestURL); err != nil {
		p.log.Warn("webhook signature rejected", "provider", provider, "error", err)
		p.record(provider, "discarded")
		return err
	}

	events, err := adapter.ParseWebhook(body)
	if err != nil {
		p.log.Warn("webhook payload unparseable", "provider", provider, "error", err)
		p.record(provider, "discarded")
		return fmt.Errorf("failed to parse %s webhook: %w", provider, err)
	}

	for _, event := range events {
		p.handleEvent(ctx, provider, event)
	}
	return nil
}

// handleEvent routes one classified event and appends a single write-once
// audit record with the final outcome. Panics and errors are contained
// here so one bad event cannot poison the rest of the batch or the HTTP
// acknowledgment.
func (p *Processor) handleEvent(ctx context.Context, provider crm.Provider, event crm.WebhookEvent) {
	receivedAt := time.Now()

	var integrationID int
	defer func() {
		if r := recover(); r != nil {
			sentry.CurrentHub().Recover(r)
			p.log.Error("panic in webhook event handler",
				"provider", provider, "event_type", event.Type, "panic", r)
			p.audit(ctx, provider, event, receivedAt, integrationID, false, fmt.Sprintf("panic: %v", r))
			p.record(provider, "failed")
		}
	}()

	routeErr := p.route(ctx, provider, event, &integrationID)
	switch {
	case routeErr == nil:
		p.audit(ctx, provider, event, receivedAt, integrationID, true, "")
		p.record(provider, "processed")
	case errors.Is(routeErr, errDiscarded):
		p.log.Debug("webhook event discarded",
			"provider", provider, "event_type", event.Type, "reason", routeErr)
		p.audit(ctx, provider, event, receivedAt, integrationID, false, routeErr.Error())
		p.record(provider, "discarded")
	default:
		sentry.CaptureException(routeErr)
		p.log.Error("webhook event processing failed",
			"provider", provider, "event_type", event.Type,
			"object_id", event.ObjectID, "error", routeErr)
		p.audit(ctx, provider, event, receivedAt, integrationID, false, routeErr.Error())
		p.record(provider, "failed")
	}
}

func (p *Processor) route(ctx context.Context, provider crm.Provider, event crm.WebhookEvent, integrationID *int) error {
	integ, err := p.resolveIntegration(ctx, provider, event.AccountID)
	if err != nil {
		return err
	}
	if integ == nil {
		return discard("no integration for account " + event.AccountID)
	}
	*integrationID = integ.ID

	if integ.SyncDirection == "outbound" {
		return discard("inbound sync disabled")
	}

	switch event.Type {
	case crm.EventDealStageChanged:
		return p.applyStageChange(ctx, integ, event)
	case crm.EventDealDeleted:
		return p.links.UnlinkExternal(ctx, integ.ID, event.ObjectID)
	case crm.EventContactChanged:
		return p.applyContactChange(ctx, integ, event)
	default:
		return discard("unrecognized event type " + event.Type)
	}
}

// applyStageChange maps the external stage back to an internal status and
// applies it to the linked proposal. Re-observing the stage we just pushed
// is a no-op, which breaks the outbound-inbound echo loop.
func (p *Processor) applyStageChange(ctx context.Context, integ *ent.CRMIntegration, event crm.WebhookEvent) error {
	link, err := p.links.FindByExternalDeal(ctx, crm.Provider(integ.Provider), event.ObjectID)
	if err != nil {
		return err
	}
	if link == nil {
		return discard("no linked proposal for deal " + event.ObjectID)
	}

	status, err := p.stages.StatusForStage(ctx, integ.ID, event.StageID, event.StageName)
	if err != nil {
		if errors.Is(err, crm.ErrNoMapping) {
			return discard("no status mapping for stage " + event.StageID)
		}
		return err
	}

	prop, err := p.db.Proposal.Get(ctx, link.ProposalID)
	if err != nil {
		return fmt.Errorf("failed to load proposal %d: %w", link.ProposalID, err)
	}
	if string(prop.Status) == status {
		return nil
	}

	if err := prop.Update().
		SetStatus(proposal.Status(status)).
		SetStatusChangedAt(time.Now()).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to update proposal status: %w", err)
	}

	p.log.Info("proposal status updated from CRM",
		"proposal_id", prop.ID, "provider", integ.Provider,
		"from", prop.Status, "to", status)
	if p.notifier != nil {
		p.notifier.NotifyStatusChanged(ctx, prop.ID, status)
	}
	return nil
}

// applyContactChange updates the mirrored contact when a local copy exists.
// Contacts never imported locally are ignored.
func (p *Processor) applyContactChange(ctx context.Context, integ *ent.CRMIntegration, event crm.WebhookEvent) error {
	if event.Contact == nil {
		return nil
	}
	mirrored, err := p.db.CRMContact.Query().
		Where(
			crmcontact.IntegrationID(integ.ID),
			crmcontact.ExternalContactID(event.ObjectID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil
		}
		return err
	}

	update := mirrored.Update()
	if event.Contact.Email != "" {
		update.SetEmail(event.Contact.Email)
	}
	if event.Contact.FirstName != "" {
		update.SetFirstName(event.Contact.FirstName)
	}
	if event.Contact.LastName != "" {
		update.SetLastName(event.Contact.LastName)
	}
	if event.Contact.Company != "" {
		update.SetCompany(event.Contact.Company)
	}
	if event.Contact.Phone != "" {
		update.SetPhone(event.Contact.Phone)
	}
	return update.Exec(ctx)
}

// resolveIntegration finds the integration owning a provider account id.
// Inbound events carry no internal user id, only the provider-side account
// identifier captured at connect time.
func (p *Processor) resolveIntegration(ctx context.Context, provider crm.Provider, accountID string) (*ent.CRMIntegration, error) {
	if accountID == "" {
		return nil, nil
	}
	integ, err := p.db.CRMIntegration.Query().
		Where(
			crmintegration.ProviderEQ(crmintegration.Provider(provider)),
			crmintegration.AccountID(accountID),
			crmintegration.Active(true),
		).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve integration: %w", err)
	}
	return integ, nil
}

// audit appends the write-once log entry for one event.
func (p *Processor) audit(ctx context.Context, provider crm.Provider, event crm.WebhookEvent, receivedAt time.Time, integrationID int, processed bool, reason string) {
	create := p.db.WebhookLog.Create().
		SetProvider(webhooklog.Provider(provider)).
		SetEventType(event.Type).
		SetPayload(event.Raw).
		SetReceivedAt(receivedAt).
		SetProcessed(processed)
	if integrationID != 0 {
		create.SetIntegrationID(integrationID)
	}
	if reason != "" {
		create.SetProcessingError(reason)
	}
	if err := create.Exec(ctx); err != nil {
		p.log.Error("failed to append webhook log", "provider", provider, "error", err)
	}
}

func (p *Processor) record(provider crm.Provider, outcome string) {
	if p.metrics != nil {
		p.metrics.RecordCRMWebhook(string(provider), outcome)
	}
}
