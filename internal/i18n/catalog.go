// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package i18n

import "golang.org/x/text/language"

// catalog holds the UI strings per locale. Keys are stable identifiers;
// the gateway localizes its own error details, these cover everything the
// dashboard renders itself.
var catalog = map[language.Tag]map[string]string{
	language.English: {
		"app.title":            "PrivateGxT",
		"login.email":          "Email address",
		"login.password":       "Password",
		"login.magic_sent":     "Check your inbox for a sign-in link.",
		"login.failed":         "Sign-in failed. Check your credentials.",
		"chat.placeholder":     "Ask your documents anything...",
		"chat.thinking":        "Thinking...",
		"chat.send_failed":     "Message could not be sent.",
		"chat.cleared":         "Chat history cleared.",
		"chat.nothing_clear":   "Chat history is already empty.",
		"confirm.clear_chat":   "Delete the entire chat history?",
		"confirm.delete_doc":   "Delete this document?",
		"docs.title":           "Documents",
		"docs.empty":           "No documents yet. Upload one to get started.",
		"docs.uploading":       "Uploading...",
		"docs.processing":      "processing",
		"docs.upload_failed":   "Upload failed.",
		"docs.delete_failed":   "Document could not be deleted.",
		"export.done":          "Transcript exported.",
		"export.empty":         "Nothing to export.",
		"admin.title":          "Administration",
		"admin.current_model":  "Active model",
		"admin.model_switched": "Model switched.",
		"error.network":        "Cannot reach the server.",
		"error.unauthorized":   "Your session has expired. Please sign in again.",
	},
	language.German: {
		"app.title":            "PrivateGxT",
		"login.email":          "E-Mail-Adresse",
		"login.password":       "Passwort",
		"login.magic_sent":     "Prüfen Sie Ihren Posteingang auf den Anmeldelink.",
		"login.failed":         "Anmeldung fehlgeschlagen. Prüfen Sie Ihre Zugangsdaten.",
		"chat.placeholder":     "Fragen Sie Ihre Dokumente...",
		"chat.thinking":        "Denke nach...",
		"chat.send_failed":     "Nachricht konnte nicht gesendet werden.",
		"chat.cleared":         "Chatverlauf gelöscht.",
		"chat.nothing_clear":   "Chatverlauf ist bereits leer.",
		"confirm.clear_chat":   "Den gesamten Chatverlauf löschen?",
		"confirm.delete_doc":   "Dieses Dokument löschen?",
		"docs.title":           "Dokumente",
		"docs.empty":           "Noch keine Dokumente. Laden Sie eines hoch.",
		"docs.uploading":       "Wird hochgeladen...",
		"docs.processing":      "wird verarbeitet",
		"docs.upload_failed":   "Hochladen fehlgeschlagen.",
		"docs.delete_failed":   "Dokument konnte nicht gelöscht werden.",
		"export.done":          "Verlauf exportiert.",
		"export.empty":         "Nichts zu exportieren.",
		"admin.title":          "Verwaltung",
		"admin.current_model":  "Aktives Modell",
		"admin.model_switched": "Modell gewechselt.",
		"error.network":        "Server nicht erreichbar.",
		"error.unauthorized":   "Ihre Sitzung ist abgelaufen. Bitte melden Sie sich erneut an.",
	},
	language.Spanish: {
		"app.title":            "PrivateGxT",
		"login.email":          "Correo electrónico",
		"login.password":       "Contraseña",
		"login.magic_sent":     "Revise su bandeja de entrada para el enlace de acceso.",
		"login.failed":         "Error al iniciar sesión. Verifique sus credenciales.",
		"chat.placeholder":     "Pregunte lo que quiera a sus documentos...",
		"chat.thinking":        "Pensando...",
		"chat.send_failed":     "No se pudo enviar el mensaje.",
		"chat.cleared":         "Historial de chat borrado.",
		"chat.nothing_clear":   "El historial de chat ya está vacío.",
		"confirm.clear_chat":   "¿Borrar todo el historial de chat?",
		"confirm.delete_doc":   "¿Eliminar este documento?",
		"docs.title":           "Documentos",
		"docs.empty":           "Aún no hay documentos. Suba uno para empezar.",
		"docs.uploading":       "Subiendo...",
		"docs.processing":      "procesando",
		"docs.upload_failed":   "Error al subir.",
		"docs.delete_failed":   "No se pudo eliminar el documento.",
		"export.done":          "Transcripción exportada.",
		"export.empty":         "Nada que exportar.",
		"admin.title":          "Administración",
		"admin.current_model":  "Modelo activo",
		"admin.model_switched": "Modelo cambiado.",
		"error.network":        "No se puede conectar con el servidor.",
		"error.unauthorized":   "Su sesión ha caducado. Inicie sesión de nuevo.",
	},
}
