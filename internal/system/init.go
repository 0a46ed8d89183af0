package system

import (
	"log"
)

var BotChatID string

// MinWithdrawalDisplay 最低提现金额展示值，仅用于余额接口提示，不参与校验
var MinWithdrawalDisplay string

func Config() {

	BotChatID = (&ConfigSystem{}).GetConfigCacheByConfigKey("sys.telegram.notify.group").ConfigValue
	MinWithdrawalDisplay = (&ConfigSystem{}).GetConfigCacheByConfigKey("sys.withdrawal.min.display").ConfigValue

	log.Printf("Telegram, 结算告警群ID: %s", BotChatID)

}
