// Package render выполняет подстановку шаблонов в конфигурацию задач.
//
// Оркестратор передаёт переменные выполнения (время, параметры запуска),
// а render однократно подставляет их в шаблонизируемые поля задачи
// до передачи конфигурации движку сканирования. Движок получает уже
// отрендеренные значения — второй проход подстановки не выполняется.
//
// Шаблоны — стандартные Go text/template выражения:
//
//	{{ .Vars.ds }}
//	{{ .Params.client_id }}
//	{{ .Env.SCAN_SCHEMA }}
package render
