package consultationtype

import (
	"github.com/medbridge-ng/consultation-service/pkg/dbmetrics"
)

// DBExecutor интерфейс для выполнения SQL запросов
type DBExecutor = dbmetrics.DBExecutor
