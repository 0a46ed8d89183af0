package mq

import (
	"encoding/json"
	"log"

	"github.com/streadway/amqp"

	"wht-ledger-api/internal/constant"
	"wht-ledger-api/internal/dal"
	"wht-ledger-api/internal/dto"
	"wht-ledger-api/internal/service"
)

const maxRetry = 3

// StartConsumers 消费订单侧佣金入账事件
// 入账按 (供应商, 订单) 幂等，重复投递直接 Ack。
func StartConsumers() {
	if dal.RabbitCh == nil {
		log.Println("RabbitMQ channel not initialized")
		return
	}
	msgs, err := dal.RabbitCh.Consume("commission_accrued", "", false, false, false, false, nil)
	if err != nil {
		log.Printf("consume commission_accrued failed: %v", err)
		return
	}
	svc := service.NewCommissionService()
	for d := range msgs {
		go handleAccrual(svc, d)
	}
}

func handleAccrual(svc *service.CommissionService, d amqp.Delivery) {
	var msg dto.CommissionAccruedMsg
	if err := json.Unmarshal(d.Body, &msg); err != nil {
		log.Printf("accrual unmarshal err: %v", err)
		d.Nack(false, false)
		return
	}

	resp, err := svc.Record(dto.RecordCommissionReq{
		OrderId:  msg.OrderID,
		VendorId: msg.VendorID,
		DoctorId: msg.DoctorID,
		Amount:   msg.Amount,
		Rate:     msg.Rate,
	})
	if err != nil {
		// 金额非法/供应商无效属于脏数据，重试无意义
		switch constant.CodeOf(err) {
		case constant.CodeCommissionAmountInvalid, constant.CodeVendorNotFound, constant.CodeVendorDisabled, constant.CodeInvalidParams:
			log.Printf("accrual rejected: order=%d vendor=%d err=%v", msg.OrderID, msg.VendorID, err)
			d.Nack(false, false)
			return
		}

		log.Printf("accrual failed: order=%d vendor=%d err=%v", msg.OrderID, msg.VendorID, err)
		if msg.RetryCount < maxRetry {
			msg.RetryCount++
			retryBody, _ := json.Marshal(msg)
			_ = dal.RabbitCh.Publish(
				"", "commission_accrued", false, false,
				amqp.Publishing{
					ContentType: "application/json",
					Body:        retryBody,
				},
			)
			log.Printf("retrying accrual for order %d (attempt %d)", msg.OrderID, msg.RetryCount)
		} else {
			log.Printf("max retry reached for accrual order %d", msg.OrderID)
		}
		d.Nack(false, false)
		return
	}

	if resp.Duplicate {
		log.Printf("accrual duplicate: order=%d vendor=%d commission=%d", msg.OrderID, msg.VendorID, resp.CommissionId)
	}
	d.Ack(false)
}
