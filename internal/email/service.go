package email

import (
	"context"
	"encoding/json"
	"fmt"
	"net/smtp"
	"time"

	"barbershop/internal/logger"
	"barbershop/internal/metrics"

	"github.com/redis/go-redis/v9"
)

const (
	queueKey       = "emails"
	failedQueueKey = "emails:failed"
	maxTries       = 3
)

type EmailJob struct {
	To      string    `json:"to"`
	Name    string    `json:"name"`
	Type    string    `json:"type"`
	Subject string    `json:"subject"`
	Body    string    `json:"body"`
	Tries   int       `json:"tries"`
	Created time.Time `json:"created"`
}

type Service struct {
	redis    *redis.Client
	from     string
	fromName string
	smtpHost string
	smtpPort string
	smtpUser string
	smtpPass string
}

func New(rdb *redis.Client, fromEmail, fromName, smtpHost, smtpPort, smtpUser, smtpPass string) *Service {
	return &Service{
		redis:    rdb,
		from:     fromEmail,
		fromName: fromName,
		smtpHost: smtpHost,
		smtpPort: smtpPort,
		smtpUser: smtpUser,
		smtpPass: smtpPass,
	}
}

func (s *Service) enqueue(ctx context.Context, emailType, to, name, subject, body string) error {
	job := EmailJob{
		To:      to,
		Name:    name,
		Type:    emailType,
		Subject: subject,
		Body:    body,
		Tries:   0,
		Created: time.Now(),
	}

	data, err := json.Marshal(job)
	if err != nil {
		logger.Errorf("Failed to marshal email job: %v", err)
		return err
	}

	if err := s.redis.LPush(ctx, queueKey, data).Err(); err != nil {
		logger.Errorf("Failed to queue email to %s: %v", to, err)
		metrics.RecordEmail(emailType, "queue_failed")
		return err
	}

	metrics.RecordEmail(emailType, "queued")
	logger.Infof("Email queued: %s to %s", subject, to)
	return nil
}

// Start drains the queue until the context is cancelled. Run as a goroutine
// next to the HTTP server.
func (s *Service) Start(ctx context.Context) {
	logger.Info("Email worker started")

	go s.reportQueueLength(ctx)

	for {
		select {
		case <-ctx.Done():
			logger.Info("Email worker stopped")
			return
		default:
			s.processNext(ctx)
		}
	}
}

func (s *Service) reportQueueLength(ctx context.Context) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			metrics.EmailQueueLength.Set(float64(s.QueueLength(ctx)))
		}
	}
}

func (s *Service) processNext(ctx context.Context) {
	result, err := s.redis.BRPop(ctx, 2*time.Second, queueKey).Result()
	if err != nil {
		return
	}

	var job EmailJob
	if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
		logger.Errorf("Bad email data: %v", err)
		return
	}

	job.Tries++
	logger.Infof("Sending email to %s (attempt %d)", job.To, job.Tries)
	if err := s.sendNow(job); err != nil {
		logger.Errorf("Failed to send email to %s: %v", job.To, err)

		if job.Tries < maxTries {
			time.Sleep(5 * time.Second)
			data, _ := json.Marshal(job)
			s.redis.LPush(context.Background(), queueKey, data)
			logger.Infof("Retrying email to %s (attempt %d)", job.To, job.Tries+1)
		} else {
			logger.Errorf("Email to %s failed after %d attempts", job.To, maxTries)
			metrics.RecordEmail(job.Type, "failed")
			s.saveFailed(job, err)
		}
		return
	}

	metrics.RecordEmail(job.Type, "sent")
	logger.Infof("Email sent successfully to %s", job.To)
}

func (s *Service) sendNow(job EmailJob) error {
	message := fmt.Sprintf("From: %s <%s>\r\n", s.fromName, s.from)
	message += fmt.Sprintf("To: %s\r\n", job.To)
	message += fmt.Sprintf("Subject: %s\r\n", job.Subject)
	message += "\r\n" + job.Body

	var auth smtp.Auth
	if s.smtpUser != "" && s.smtpPass != "" {
		auth = smtp.PlainAuth("", s.smtpUser, s.smtpPass, s.smtpHost)
	}

	addr := s.smtpHost + ":" + s.smtpPort
	return smtp.SendMail(addr, auth, s.from, []string{job.To}, []byte(message))
}

func (s *Service) saveFailed(job EmailJob, err error) {
	failed := map[string]interface{}{
		"job":   job,
		"error": err.Error(),
		"time":  time.Now(),
	}
	data, _ := json.Marshal(failed)
	s.redis.LPush(context.Background(), failedQueueKey, data)
	logger.Errorf("Email moved to failed queue: %s", job.To)
}

func (s *Service) QueueLength(ctx context.Context) int64 {
	length, _ := s.redis.LLen(ctx, queueKey).Result()
	return length
}

func (s *Service) SendBookingReceived(ctx context.Context, to, name, service, date, timeOfDay string) error {
	subject := "Booking Request Received - " + service
	body := fmt.Sprintf(`Hi %s,

We received your booking request:

Service: %s
Date: %s
Time: %s

We'll email you again once it's confirmed.

- The Barbershop Team`, name, service, date, timeOfDay)

	return s.enqueue(ctx, "booking_received", to, name, subject, body)
}

func (s *Service) SendBookingConfirmed(ctx context.Context, to, name, service, date, timeOfDay string) error {
	subject := "Booking Confirmed - " + service
	body := fmt.Sprintf(`Hi %s,

Your booking is confirmed!

Service: %s
Date: %s
Time: %s

See you in the chair!

- The Barbershop Team`, name, service, date, timeOfDay)

	return s.enqueue(ctx, "booking_confirmed", to, name, subject, body)
}

func (s *Service) SendBookingCancelled(ctx context.Context, to, name, service, date, timeOfDay string) error {
	subject := "Booking Cancelled - " + service
	body := fmt.Sprintf(`Hi %s,

Your booking has been cancelled:

Service: %s
Date: %s
Time: %s

You can book a new appointment any time.

- The Barbershop Team`, name, service, date, timeOfDay)

	return s.enqueue(ctx, "booking_cancelled", to, name, subject, body)
}

func (s *Service) SendBookingRescheduled(ctx context.Context, to, name, service, date, timeOfDay string) error {
	subject := "Booking Rescheduled - " + service
	body := fmt.Sprintf(`Hi %s,

Your booking has been moved:

Service: %s
New date: %s
New time: %s

- The Barbershop Team`, name, service, date, timeOfDay)

	return s.enqueue(ctx, "booking_rescheduled", to, name, subject, body)
}

func (s *Service) SendStaffNewBooking(ctx context.Context, to, clientName, service, date, timeOfDay string) error {
	subject := "New Booking Request"
	body := fmt.Sprintf(`New booking request:

Client: %s
Service: %s
Date: %s
Time: %s

Confirm it in the admin panel.`, clientName, service, date, timeOfDay)

	return s.enqueue(ctx, "staff_new_booking", to, clientName, subject, body)
}
