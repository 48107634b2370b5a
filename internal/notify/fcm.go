// Package notify sends best-effort push notifications to the mobile app via
// Firebase Cloud Messaging.
package notify

import (
	"context"
	"fmt"
	"strconv"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"rumbo/internal/types"
)

// PlanInfo carries the payload data sent when a travel plan finishes.
type PlanInfo struct {
	PlanID      types.ID
	Title       string
	Destination string
	Duration    int
}

// Notifier delivers plan-ready pushes. Implementations are best-effort; the
// caller logs failures and never fails the plan operation on them.
type Notifier interface {
	NotifyPlanReady(ctx context.Context, deviceToken string, info PlanInfo) error
}

// FCMNotifier implements Notifier over the Firebase Admin SDK.
type FCMNotifier struct {
	msgClient *messaging.Client
	log       *zap.Logger
}

// NewFCMNotifier initialises the Firebase Admin SDK messaging client. An
// empty credentialsFile falls back to application default credentials.
func NewFCMNotifier(ctx context.Context, projectID, credentialsFile string, log *zap.Logger) (*FCMNotifier, error) {
	conf := &firebase.Config{ProjectID: projectID}

	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, conf, opts...)
	if err != nil {
		return nil, fmt.Errorf("initialising firebase app: %w", err)
	}
	msgClient, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialising firebase messaging client: %w", err)
	}

	return &FCMNotifier{msgClient: msgClient, log: log}, nil
}

// NotifyPlanReady sends an FCM data message to the user's device. The
// deviceToken must be resolved by the caller.
func (n *FCMNotifier) NotifyPlanReady(ctx context.Context, deviceToken string, info PlanInfo) error {
	if deviceToken == "" {
		return fmt.Errorf("empty device token for plan %s", string(info.PlanID))
	}

	msg := &messaging.Message{
		Token: deviceToken,
		Data: map[string]string{
			"type":        "plan_ready",
			"plan_id":     string(info.PlanID),
			"destination": info.Destination,
			"duration":    strconv.Itoa(info.Duration),
		},
		Notification: &messaging.Notification{
			Title: "Your trip is ready",
			Body:  fmt.Sprintf("%s: %d days in %s", info.Title, info.Duration, info.Destination),
		},
		Android: &messaging.AndroidConfig{
			Priority: "high",
		},
	}

	messageID, err := n.msgClient.Send(ctx, msg)
	if err != nil {
		return fmt.Errorf("sending FCM to token %s: %w", deviceToken, err)
	}

	n.log.Info("plan-ready push sent",
		zap.String("plan_id", string(info.PlanID)),
		zap.String("message_id", messageID))
	return nil
}
