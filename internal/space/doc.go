// Package space реализует перечисление пространства строк шаблона:
// подсчёт точных кардинальностей (math/big), курсор-одометр с переносом
// разрядов и взаимно-обратное отображение курсор ↔ линейный индекс.
//
// Порядок перечисления фиксирован: в последовательности быстрее всего
// меняется самый правый элемент (смешанная система счисления), ветви
// альтернативы перебираются в порядке объявления, причём выбранная ветвь
// исчерпывается целиком до перехода к следующей.
package space
