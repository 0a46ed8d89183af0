package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"wht-ledger-api/internal/config"
	"wht-ledger-api/internal/dal"
	"wht-ledger-api/internal/handler"
	"wht-ledger-api/internal/idgen"
	"wht-ledger-api/internal/logger"
	"wht-ledger-api/internal/middleware"
	"wht-ledger-api/internal/mq"
	"wht-ledger-api/internal/system"
)

func main() {
	// load config env
	config.Init()

	// init infra
	dal.InitMainDB()
	dal.InitRedis()
	dal.InitRabbitMQ()

	// idgen
	idgen.Init(1)
	go idgen.CheckSystemClock()

	// loggers
	logger.Init()

	// 系统参数（告警群ID等）
	system.Config()

	// start consumers
	go mq.StartConsumers()

	// http server
	if config.C.Server.Mode != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	// 设置可信代理 IP（如本地或内网）
	r.SetTrustedProxies([]string{"127.0.0.1", "192.168.0.0/16"})
	r.Use(middleware.Recover(), middleware.Trace(), middleware.RequestLogger())

	vh := handler.NewVendorHandler()
	ah := handler.NewAdminHandler()
	ch := handler.NewCommissionHandler()

	// 供应商端
	v1 := r.Group("/api/v1", middleware.VendorAuth())
	{
		v1.POST("/withdrawals", vh.CreateWithdrawal)
		v1.POST("/withdrawals/:id/cancel", vh.CancelWithdrawal)
		v1.GET("/withdrawals", vh.ListWithdrawals)
		v1.GET("/balance", vh.Balance)
		v1.GET("/commissions", vh.ListCommissions)
	}

	// 运营后台
	admin := r.Group("/api/v1/admin", middleware.AdminAuth())
	{
		admin.GET("/withdrawals/pending", ah.ListPending)
		admin.GET("/withdrawals/:id/commissions", ah.ListCommissions)
		admin.POST("/withdrawals/:id/approve", ah.Approve)
		admin.POST("/withdrawals/:id/reject", ah.Reject)
	}

	// 内部接口（订单服务佣金入账）
	internal := r.Group("/api/v1/internal", middleware.InternalAuth())
	{
		internal.POST("/commissions", ch.Record)
	}

	addr := ":" + config.C.Server.Port
	log.Printf("listening %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
