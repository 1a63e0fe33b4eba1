package constvars

const (
	RedisKeyModelSchemaFormat = "avalia:model_schema:%s"
)
