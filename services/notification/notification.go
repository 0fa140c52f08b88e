// File: services/notification/notification.go
package notification

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/messaging"

	customerRepo "barberbook/database/repository/customer"
)

// NotificationService delivers push messages to customers.
type NotificationService interface {
	SendCustomerPush(ctx context.Context, customerID, title, body string, data map[string]string) error
}

// FCMSender is the slice of the Firebase Messaging API used here;
// *messaging.Client satisfies it.
type FCMSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type DefaultNotificationService struct {
	FCM       FCMSender
	Customers customerRepo.CustomerRepository
}

// SendCustomerPush looks up the customer's device token and sends one
// FCM message. A customer without a token is a silent no-op.
func (s *DefaultNotificationService) SendCustomerPush(ctx context.Context, customerID, title, body string, data map[string]string) error {
	customer, err := s.Customers.GetByID(ctx, customerID)
	if err != nil {
		return fmt.Errorf("customer lookup: %w", err)
	}
	if customer.FCMToken == "" {
		return nil
	}

	msg := &messaging.Message{
		Token: customer.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}
	if _, err := s.FCM.Send(ctx, msg); err != nil {
		return fmt.Errorf("fcm send: %w", err)
	}
	return nil
}
