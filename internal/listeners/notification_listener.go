package listeners

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"fibertrack/internal/entities"
	"fibertrack/internal/events"
	"fibertrack/internal/repositories"
	"fibertrack/pkg/eventbus"
	"fibertrack/pkg/mailer"
)

// NotificationListener emails project managers and network engineers about
// project activity. Delivery failures are logged per recipient and never
// propagate back to the request that triggered the event.
type NotificationListener struct {
	teamRepo repositories.TeamMemberRepositoryInterface
	mailer   mailer.Mailer
	baseURL  string
	logger   *zap.Logger
}

func NewNotificationListener(
	teamRepo repositories.TeamMemberRepositoryInterface,
	m mailer.Mailer,
	baseURL string,
	logger *zap.Logger,
) *NotificationListener {
	return &NotificationListener{
		teamRepo: teamRepo,
		mailer:   m,
		baseURL:  baseURL,
		logger:   logger,
	}
}

func (l *NotificationListener) Register(bus *eventbus.Bus) {
	bus.Subscribe(events.ProjectCreatedName, l.handleProjectCreated)
	bus.Subscribe(events.ProjectUpdatedName, l.handleProjectUpdated)
	bus.Subscribe(events.ProjectStageChangedName, l.handleStageChanged)
	bus.Subscribe(events.ProjectDocumentUploadedName, l.handleDocumentUploaded)
}

func (l *NotificationListener) handleProjectCreated(ctx context.Context, e eventbus.Event) error {
	event, ok := e.(events.ProjectCreated)
	if !ok {
		return fmt.Errorf("unexpected event payload for %s", e.Name())
	}
	subject := fmt.Sprintf("New Project Created: %s", event.Project.ProjectCode)
	return l.notify(ctx, event.Project, subject, "", true)
}

func (l *NotificationListener) handleProjectUpdated(ctx context.Context, e eventbus.Event) error {
	event, ok := e.(events.ProjectUpdated)
	if !ok {
		return fmt.Errorf("unexpected event payload for %s", e.Name())
	}
	subject := fmt.Sprintf("Project Updated: %s", event.Project.ProjectCode)
	return l.notify(ctx, event.Project, subject, "details updated", false)
}

func (l *NotificationListener) handleStageChanged(ctx context.Context, e eventbus.Event) error {
	event, ok := e.(events.ProjectStageChanged)
	if !ok {
		return fmt.Errorf("unexpected event payload for %s", e.Name())
	}
	subject := fmt.Sprintf("Project Stage Changed: %s", event.Project.ProjectCode)
	updateType := fmt.Sprintf("moved to %s", event.Project.CurrentStage.Label())
	return l.notify(ctx, event.Project, subject, updateType, false)
}

func (l *NotificationListener) handleDocumentUploaded(ctx context.Context, e eventbus.Event) error {
	event, ok := e.(events.ProjectDocumentUploaded)
	if !ok {
		return fmt.Errorf("unexpected event payload for %s", e.Name())
	}
	subject := fmt.Sprintf("Document Uploaded: %s", event.Project.ProjectCode)
	updateType := fmt.Sprintf("document %q uploaded", event.Document.Name)
	return l.notify(ctx, event.Project, subject, updateType, false)
}

func (l *NotificationListener) notify(ctx context.Context, project entities.Project, subject, updateType string, isNew bool) error {
	if !l.mailer.Enabled() {
		l.logger.Debug("mailer disabled, skipping notification", zap.String("subject", subject))
		return nil
	}

	recipients, err := l.teamRepo.FindByRoles(ctx, entities.NotificationRoles)
	if err != nil {
		return fmt.Errorf("resolving notification recipients: %w", err)
	}

	for _, member := range recipients {
		if member.Email == "" {
			l.logger.Warn("team member has no email, skipping",
				zap.Int64("teamMemberId", member.ID),
				zap.String("name", member.Name))
			continue
		}

		data := mailer.TemplateData{
			RecipientName: member.Name,
			ProjectCode:   project.ProjectCode,
			CustomerName:  project.CustomerName,
			ServiceType:   string(project.ServiceType),
			CurrentStage:  project.CurrentStage.Label(),
			UpdateType:    updateType,
			ProjectURL:    fmt.Sprintf("%s/projects/%d", l.baseURL, project.ID),
		}

		var body string
		if isNew {
			body, err = mailer.RenderNewProject(data)
		} else {
			body, err = mailer.RenderProjectUpdate(data)
		}
		if err != nil {
			return fmt.Errorf("rendering notification email: %w", err)
		}

		if err := l.mailer.Send(ctx, member.Email, subject, body); err != nil {
			l.logger.Error("sending notification email failed",
				zap.String("to", member.Email),
				zap.String("subject", subject),
				zap.Error(err))
		}
	}
	return nil
}
