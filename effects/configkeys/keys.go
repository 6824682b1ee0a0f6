package configkeys

const (
	delimiter = "."

	ConfigPrefix = "config"

	ConfigPartitionPrefix = ConfigPrefix + delimiter + "partition"

	ConfigPartitionStrategy = ConfigPartitionPrefix + delimiter + "strategy"

	ConfigPartitionCachePrefix = ConfigPartitionPrefix + delimiter + "cache"
	ConfigPartitionCacheKind   = ConfigPartitionCachePrefix + delimiter + "kind"
	ConfigPartitionCacheShards = ConfigPartitionCachePrefix + delimiter + "shards"

	ConfigEffectPrefix = ConfigPrefix + delimiter + "effect"

	ConfigEffectLogPrefix = ConfigEffectPrefix + delimiter + "log"

	ConfigEffectLogHandlerPrefix     = ConfigEffectLogPrefix + delimiter + "handler"
	ConfigEffectLogHandlerBufferSize = ConfigEffectLogHandlerPrefix + delimiter + "buffer_size"
)
