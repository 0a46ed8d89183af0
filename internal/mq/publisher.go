package mq

import (
	"encoding/json"
	"log"

	"wht-ledger-api/internal/dal"
	"wht-ledger-api/internal/dto"

	"github.com/streadway/amqp"
)

func publish(routingKey string, evt dto.WithdrawalSettledEvent) error {
	if dal.RabbitCh == nil {
		return nil
	}
	b, _ := json.Marshal(evt)
	err := dal.RabbitCh.Publish(
		"ledger_events",
		routingKey,
		false, false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         b,
		},
	)
	if err != nil {
		log.Printf("publish %s failed: %v", routingKey, err)
	}
	return err
}

// PublishWithdrawalSettled 审批通过事件（通知服务消费后邮件告知供应商）
func PublishWithdrawalSettled(evt dto.WithdrawalSettledEvent) error {
	return publish("withdrawal.settled", evt)
}

// PublishWithdrawalRejected 审批驳回事件
func PublishWithdrawalRejected(evt dto.WithdrawalSettledEvent) error {
	return publish("withdrawal.rejected", evt)
}
