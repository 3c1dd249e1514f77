package respond

import (
	"encoding/json"
	"net/http"
)

func JSON(w http.ResponseWriter, r *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(data)
}

// Error пишет ошибку в формате {"detail": "..."}
func Error(w http.ResponseWriter, r *http.Request, code int, detail string) {
	JSON(w, r, code, map[string]string{"detail": detail})
}

// Message пишет подтверждение в формате {"message": "..."}
func Message(w http.ResponseWriter, r *http.Request, code int, message string) {
	JSON(w, r, code, map[string]string{"message": message})
}
