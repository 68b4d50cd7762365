// Package notify рассылает уведомления о непрошедших сканах.
//
// Уведомления используются для "мягких" падений: задача не проваливается,
// но команда узнаёт о проблемах в данных. Жёсткие падения обрабатывает
// оркестратор через ошибку задачи, уведомления ему не нужны.
package notify
