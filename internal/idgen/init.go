package idgen

import (
	"log"
	"os"
	"strconv"
)

// Init 初始化账本使用的两个 ID 节点（支持多实例部署）
func Init(nodeID int64) {
	if v := os.Getenv("SNOWFLAKE_NODE_ID"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil || parsed < 0 || parsed > 1023 {
			log.Fatalf("[IDGen] Invalid SNOWFLAKE_NODE_ID: %v", v)
		}
		nodeID = parsed
	}
	for _, name := range []string{"commission", "withdrawal"} {
		if err := InitNode(name, nodeID); err != nil {
			log.Fatalf("[IDGen] InitNode %s failed: %v", name, err)
		}
	}
	log.Printf("[IDGen] Snowflake nodes initialized: nodeID=%d", nodeID)
}
