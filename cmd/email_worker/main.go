package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/hoagiehub/hoagie-api/config"
	"github.com/hoagiehub/hoagie-api/pkg/mailer"
)

// Consumes the email queue and delivers via Mailgun. The API only enqueues
// welcome emails today; unknown templates are acked and dropped with a log
// line rather than requeued forever.
func main() {
	cfg := config.Load()
	if !cfg.MailSendEnabled {
		log.Println("MAIL_SEND_ENABLED=false; email worker disabled (no real emails will be sent)")
		return
	}
	if cfg.RabbitMQURL == "" || cfg.RabbitMQEmailQueue == "" {
		log.Fatal("RabbitMQ not configured")
	}
	if cfg.MailgunDomain == "" || cfg.MailgunAPIKey == "" || cfg.MailgunSender == "" {
		log.Fatal("Mailgun not configured")
	}

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		log.Fatalf("amqp dial: %v", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("amqp channel: %v", err)
	}
	defer func() { _ = ch.Close() }()

	// Prefetch for fair dispatch
	if err := ch.Qos(16, 0, false); err != nil {
		log.Fatalf("qos: %v", err)
	}

	if _, err := ch.QueueDeclare(cfg.RabbitMQEmailQueue, true, false, false, false, nil); err != nil {
		log.Fatalf("queue declare: %v", err)
	}

	msgs, err := ch.Consume(cfg.RabbitMQEmailQueue, "", false, false, false, false, nil)
	if err != nil {
		log.Fatalf("consume: %v", err)
	}

	mg := mailer.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunSender)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	log.Printf("email worker consuming queue %q", cfg.RabbitMQEmailQueue)

	for {
		select {
		case <-quit:
			log.Println("email worker shutting down")
			return
		case d, ok := <-msgs:
			if !ok {
				log.Println("amqp channel closed")
				return
			}
			handle(mg, d)
		}
	}
}

func handle(mg *mailer.Mailgun, d amqp.Delivery) {
	var job mailer.EmailJob
	if err := json.Unmarshal(d.Body, &job); err != nil {
		log.Printf("bad email job, dropping: %v", err)
		_ = d.Ack(false)
		return
	}

	subject, text, html := job.Subject, job.Text, job.HTML
	if job.Template == mailer.TemplateWelcome {
		var err error
		subject, text, html, err = mailer.RenderWelcome(job.Data)
		if err != nil {
			log.Printf("welcome render failed for %s, dropping: %v", job.To, err)
			_ = d.Ack(false)
			return
		}
	} else if job.Template != "" {
		log.Printf("unknown template %q, dropping", job.Template)
		_ = d.Ack(false)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := mg.Send(ctx, job.To, subject, text, html); err != nil {
		log.Printf("send to %s failed, requeueing: %v", job.To, err)
		_ = d.Nack(false, true)
		return
	}
	_ = d.Ack(false)
}
