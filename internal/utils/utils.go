package utils

import (
	"encoding/json"
	"net/http"

	"github.com/ddsolutions/careers-api/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

func WriteJSONResponse(w http.ResponseWriter, status int, success bool, message string, data interface{}, errDetail interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(models.APIResponse{
		Success: success,
		Message: message,
		Data:    data,
		Error:   errDetail,
	})
}

func GenerateID() string {
	return uuid.NewString()
}

func DatatypesJSONFromStrings(ss []string) datatypes.JSON {
	if ss == nil {
		ss = []string{}
	}
	b, _ := json.Marshal(ss)
	return datatypes.JSON(b)
}

func DatatypesJSONFromAny(v interface{}) datatypes.JSON {
	if v == nil {
		return datatypes.JSON([]byte("[]"))
	}
	b, _ := json.Marshal(v)
	return datatypes.JSON(b)
}
