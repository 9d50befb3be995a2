package storage

import (
	"fmt"
	"os"

	"ecotrack-be/config"
)

// Open selects a Backend from environment variables.
//
//	ECOTRACK_STORAGE_DRIVER: file|redis|mongo|memory (default file)
//	ECOTRACK_DATA_DIR: directory root when driver=file (default ./data)
//	REDIS_ADDRESS / REDIS_PASSWORD: when driver=redis
//	MONGODB_URI: when driver=mongo
func Open() (Backend, error) {
	driver := os.Getenv("ECOTRACK_STORAGE_DRIVER")
	if driver == "" {
		driver = "file"
	}
	switch driver {
	case "file":
		return NewFile(os.Getenv("ECOTRACK_DATA_DIR"))
	case "redis":
		return NewRedis(config.ConnectRedis()), nil
	case "mongo":
		return NewMongo(config.ConnectMongo().Collection("kv")), nil
	case "memory":
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %s", driver)
	}
}
