package dal

import (
	"log"

	"wht-ledger-api/internal/config"

	"github.com/streadway/amqp"
)

var RabbitConn *amqp.Connection
var RabbitCh *amqp.Channel

func InitRabbitMQ() {
	url := config.C.RabbitMQ.URL
	conn, err := amqp.Dial(url)
	if err != nil {
		log.Fatalf("rabbitmq dial failed: %v", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("rabbitmq channel failed: %v", err)
	}

	// exchange & queues
	// commission_accrued: 订单侧佣金入账事件（本服务消费）
	// withdrawal_settled: 提现审批结果事件（通知服务消费）
	if err := ch.ExchangeDeclare("ledger_events", "topic", true, false, false, false, nil); err != nil {
		log.Fatalf("exchange declare failed: %v", err)
	}
	if _, err := ch.QueueDeclare("commission_accrued", true, false, false, false, nil); err != nil {
		log.Fatalf("queue declare commission_accrued failed: %v", err)
	}
	if _, err := ch.QueueDeclare("withdrawal_settled", true, false, false, false, nil); err != nil {
		log.Fatalf("queue declare withdrawal_settled failed: %v", err)
	}
	if err := ch.QueueBind("commission_accrued", "commission.accrued", "ledger_events", false, nil); err != nil {
		log.Fatalf("queue bind commission_accrued failed: %v", err)
	}
	if err := ch.QueueBind("withdrawal_settled", "withdrawal.*", "ledger_events", false, nil); err != nil {
		log.Fatalf("queue bind withdrawal_settled failed: %v", err)
	}

	RabbitConn = conn
	RabbitCh = ch
}
