package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"tattoohub/internal/config"
	"tattoohub/internal/logger"
	"tattoohub/internal/mail"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("load config")
	}
	log := logger.New(cfg.AppName+"-email-worker", cfg.AppEnv)

	if !cfg.MailSendEnabled {
		log.Info("MAIL_SEND_ENABLED=false; email worker disabled")
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
		log.WithError(err).Fatal("amqp dial")
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.WithError(err).Fatal("amqp channel")
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(16, 0, false); err != nil {
		log.WithError(err).Fatal("qos")
	}
	if _, err := mail.DeclareQueue(ch, cfg.RabbitMQEmailQueue); err != nil {
		log.WithError(err).Fatal("queue declare")
	}

	msgs, err := ch.Consume(cfg.RabbitMQEmailQueue, "", false, false, false, false, nil)
	if err != nil {
		log.WithError(err).Fatal("consume")
	}

	sender := mail.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunSender)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for msg := range msgs {
			out, err := mail.Deliver(ctx, msg.Body, sender)
			entry := log.WithFields(logrus.Fields{"message_id": msg.MessageId, "outcome": out.String()})
			switch out {
			case mail.Ack:
				entry.Debug("email sent")
				_ = msg.Ack(false)
			case mail.Requeue:
				entry.WithError(err).Warn("email send failed")
				_ = msg.Nack(false, true)
			default:
				entry.WithError(err).Error("email dropped")
				_ = msg.Nack(false, false)
			}
		}
	}()

	log.WithField("queue", cfg.RabbitMQEmailQueue).Info("email worker listening")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Info("shutting down")
	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
	}
}
