package system

import (
	"context"
	"encoding/json"

	"wht-ledger-api/internal/dal"
	"wht-ledger-api/internal/dao"
	"wht-ledger-api/internal/dto"
	rediskey "wht-ledger-api/internal/types/redis-key"
)

type ConfigSystem struct{}

// GetConfigByConfigKey 根据参数key获取参数值
func (s *ConfigSystem) GetConfigByConfigKey(configKey string) dto.ConfigDetailResponse {
	var config dto.ConfigDetailResponse

	cfg, err := dao.NewMainDao().GetConfigByKey(configKey)
	if err != nil || cfg == nil {
		return config
	}
	config.ConfigId = cfg.ConfigId
	config.ConfigName = cfg.ConfigName
	config.ConfigKey = cfg.ConfigKey
	config.ConfigValue = cfg.ConfigValue
	return config
}

// GetConfigCacheByConfigKey 根据参数key获取参数配置（redis hash 缓存）
func (s *ConfigSystem) GetConfigCacheByConfigKey(configKey string) dto.ConfigDetailResponse {
	var config dto.ConfigDetailResponse

	// 缓存不为空不从数据库读取，减少数据库压力
	if configCache, _ := dal.RedisClient.HGet(context.Background(), rediskey.SysConfigKey(), configKey).Result(); configCache != "" {
		if err := json.Unmarshal([]byte(configCache), &config); err == nil {
			return config
		}
	}

	// 从数据库读取配置并且记录到缓存
	config = s.GetConfigByConfigKey(configKey)
	if config.ConfigId > 0 {
		configBytes, _ := json.Marshal(&config)
		dal.RedisClient.HSet(context.Background(), rediskey.SysConfigKey(), configKey, string(configBytes)).Result()
	}

	return config
}
