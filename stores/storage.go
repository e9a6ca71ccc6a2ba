package stores

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/sahdevkumar/Result-Management-sub000/core"
	"github.com/sahdevkumar/Result-Management-sub000/stores/filesystem"
	"github.com/sahdevkumar/Result-Management-sub000/stores/memory"
	"github.com/sahdevkumar/Result-Management-sub000/stores/postgres"
	"github.com/sahdevkumar/Result-Management-sub000/stores/sqlite"
)

func GetStore() core.TemplateStore {
	storageType := os.Getenv("STORAGE_TYPE")
	var store core.TemplateStore

	storageField := logrus.Fields{
		"storageType": storageType,
	}

	switch storageType {
	case "filesystem":
		basePath := os.Getenv("LOCAL_STORAGE_PATH")
		if basePath == "" {
			basePath = "./data"
		}
		storageField["basePath"] = basePath
		store = filesystem.NewTemplateStore(basePath)
	case "sqlite":
		dataSourceName := os.Getenv("DATA_SOURCE_NAME")
		if dataSourceName == "" {
			dataSourceName = "results.db"
		}
		storageField["dataSourceName"] = dataSourceName
		store = sqlite.NewStore(dataSourceName)
	case "postgres":
		dsn := os.Getenv("DATABASE_URL")
		if dsn == "" {
			logrus.Fatal("DATABASE_URL environment variable must be set for postgres storage type")
		}
		store = postgres.NewStore(dsn)
	default:
		// No database configured: back the report API with demo fixtures so
		// the console is usable out of the box.
		store = memory.NewStore(memory.SeedDirectory())
		storageField["storageType"] = "in-memory"
	}
	logrus.WithFields(storageField).Info("Use storage")
	return store
}
