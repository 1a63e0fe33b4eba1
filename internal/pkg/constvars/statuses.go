package constvars

// Status labels shown to end users, keyed by the internal status value.
// The stored vocabulary is English only; the legacy Portuguese spellings the
// practice's old system wrote are accepted on input and translated here, at
// the presentation edge, never persisted.
var StatusLabelsPortuguese = map[string]string{
	"scheduled":   "agendada",
	"in_progress": "em_andamento",
	"completed":   "concluída",
	"cancelled":   "cancelada",
}

// Legacy Portuguese spellings still sent by old clients, normalized at the
// request boundary.
var LegacyPortugueseStatuses = map[string]string{
	"agendada":     "scheduled",
	"agendado":     "scheduled",
	"em_andamento": "in_progress",
	"concluída":    "completed",
	"concluida":    "completed",
	"concluído":    "completed",
	"cancelada":    "cancelled",
	"cancelado":    "cancelled",
}
