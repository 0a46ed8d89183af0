package notify

import (
	"fmt"
	"sort"
	"strings"

	"wht-ledger-api/internal/system"
	"wht-ledger-api/internal/utils/timeutil"
)

// NotifySettlementAlert 结算异常告警（超额补结算、锁超时等运营关注项）
func NotifySettlementAlert(level, title string, fields map[string]string) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("*[%s] %s*\n", strings.ToUpper(level), escapeMarkdown(title)))
	sb.WriteString(fmt.Sprintf("*时间:* %s\n", timeutil.FormatDateTime(timeutil.NowUTC())))

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if v := fields[k]; v != "" {
			sb.WriteString(fmt.Sprintf("%s: %s\n", escapeMarkdown(k), escapeMarkdown(v)))
		}
	}

	if system.BotChatID == "" {
		return
	}
	NotifySendMsgToTG(system.BotChatID, sb.String())
}

// escapeMarkdown 转义 Telegram Markdown 特殊字符
func escapeMarkdown(s string) string {
	replacer := strings.NewReplacer(
		"_", "\\_",
		"*", "\\*",
		"[", "\\[",
		"]", "\\]",
		"`", "\\`",
	)
	return replacer.Replace(s)
}
