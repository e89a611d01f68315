package amd64

// Per-mnemonic conditional entry points. Each is a thin wrapper over
// Cmovcc, Jcc or Setcc with the condition filled in from the alias
// table in cond.go.

func (a *Assembler) Cmova(dst, src Operand) error   { return a.Cmovcc(CondA, dst, src) }
func (a *Assembler) Cmovae(dst, src Operand) error  { return a.Cmovcc(CondAe, dst, src) }
func (a *Assembler) Cmovb(dst, src Operand) error   { return a.Cmovcc(CondB, dst, src) }
func (a *Assembler) Cmovbe(dst, src Operand) error  { return a.Cmovcc(CondBe, dst, src) }
func (a *Assembler) Cmovc(dst, src Operand) error   { return a.Cmovcc(CondC, dst, src) }
func (a *Assembler) Cmove(dst, src Operand) error   { return a.Cmovcc(CondE, dst, src) }
func (a *Assembler) Cmovg(dst, src Operand) error   { return a.Cmovcc(CondG, dst, src) }
func (a *Assembler) Cmovge(dst, src Operand) error  { return a.Cmovcc(CondGe, dst, src) }
func (a *Assembler) Cmovl(dst, src Operand) error   { return a.Cmovcc(CondL, dst, src) }
func (a *Assembler) Cmovle(dst, src Operand) error  { return a.Cmovcc(CondLe, dst, src) }
func (a *Assembler) Cmovna(dst, src Operand) error  { return a.Cmovcc(CondNa, dst, src) }
func (a *Assembler) Cmovnae(dst, src Operand) error { return a.Cmovcc(CondNae, dst, src) }
func (a *Assembler) Cmovnb(dst, src Operand) error  { return a.Cmovcc(CondNb, dst, src) }
func (a *Assembler) Cmovnbe(dst, src Operand) error { return a.Cmovcc(CondNbe, dst, src) }
func (a *Assembler) Cmovnc(dst, src Operand) error  { return a.Cmovcc(CondNc, dst, src) }
func (a *Assembler) Cmovne(dst, src Operand) error  { return a.Cmovcc(CondNe, dst, src) }
func (a *Assembler) Cmovng(dst, src Operand) error  { return a.Cmovcc(CondNg, dst, src) }
func (a *Assembler) Cmovnge(dst, src Operand) error { return a.Cmovcc(CondNge, dst, src) }
func (a *Assembler) Cmovnl(dst, src Operand) error  { return a.Cmovcc(CondNl, dst, src) }
func (a *Assembler) Cmovnle(dst, src Operand) error { return a.Cmovcc(CondNle, dst, src) }
func (a *Assembler) Cmovno(dst, src Operand) error  { return a.Cmovcc(CondNo, dst, src) }
func (a *Assembler) Cmovnp(dst, src Operand) error  { return a.Cmovcc(CondNp, dst, src) }
func (a *Assembler) Cmovns(dst, src Operand) error  { return a.Cmovcc(CondNs, dst, src) }
func (a *Assembler) Cmovnz(dst, src Operand) error  { return a.Cmovcc(CondNz, dst, src) }
func (a *Assembler) Cmovo(dst, src Operand) error   { return a.Cmovcc(CondO, dst, src) }
func (a *Assembler) Cmovp(dst, src Operand) error   { return a.Cmovcc(CondP, dst, src) }
func (a *Assembler) Cmovpe(dst, src Operand) error  { return a.Cmovcc(CondPe, dst, src) }
func (a *Assembler) Cmovpo(dst, src Operand) error  { return a.Cmovcc(CondPo, dst, src) }
func (a *Assembler) Cmovs(dst, src Operand) error   { return a.Cmovcc(CondS, dst, src) }
func (a *Assembler) Cmovz(dst, src Operand) error   { return a.Cmovcc(CondZ, dst, src) }

func (a *Assembler) Ja(target Operand) error   { return a.Jcc(CondA, target) }
func (a *Assembler) Jae(target Operand) error  { return a.Jcc(CondAe, target) }
func (a *Assembler) Jb(target Operand) error   { return a.Jcc(CondB, target) }
func (a *Assembler) Jbe(target Operand) error  { return a.Jcc(CondBe, target) }
func (a *Assembler) Jc(target Operand) error   { return a.Jcc(CondC, target) }
func (a *Assembler) Je(target Operand) error   { return a.Jcc(CondE, target) }
func (a *Assembler) Jg(target Operand) error   { return a.Jcc(CondG, target) }
func (a *Assembler) Jge(target Operand) error  { return a.Jcc(CondGe, target) }
func (a *Assembler) Jl(target Operand) error   { return a.Jcc(CondL, target) }
func (a *Assembler) Jle(target Operand) error  { return a.Jcc(CondLe, target) }
func (a *Assembler) Jna(target Operand) error  { return a.Jcc(CondNa, target) }
func (a *Assembler) Jnae(target Operand) error { return a.Jcc(CondNae, target) }
func (a *Assembler) Jnb(target Operand) error  { return a.Jcc(CondNb, target) }
func (a *Assembler) Jnbe(target Operand) error { return a.Jcc(CondNbe, target) }
func (a *Assembler) Jnc(target Operand) error  { return a.Jcc(CondNc, target) }
func (a *Assembler) Jne(target Operand) error  { return a.Jcc(CondNe, target) }
func (a *Assembler) Jng(target Operand) error  { return a.Jcc(CondNg, target) }
func (a *Assembler) Jnge(target Operand) error { return a.Jcc(CondNge, target) }
func (a *Assembler) Jnl(target Operand) error  { return a.Jcc(CondNl, target) }
func (a *Assembler) Jnle(target Operand) error { return a.Jcc(CondNle, target) }
func (a *Assembler) Jno(target Operand) error  { return a.Jcc(CondNo, target) }
func (a *Assembler) Jnp(target Operand) error  { return a.Jcc(CondNp, target) }
func (a *Assembler) Jns(target Operand) error  { return a.Jcc(CondNs, target) }
func (a *Assembler) Jnz(target Operand) error  { return a.Jcc(CondNz, target) }
func (a *Assembler) Jo(target Operand) error   { return a.Jcc(CondO, target) }
func (a *Assembler) Jp(target Operand) error   { return a.Jcc(CondP, target) }
func (a *Assembler) Jpe(target Operand) error  { return a.Jcc(CondPe, target) }
func (a *Assembler) Jpo(target Operand) error  { return a.Jcc(CondPo, target) }
func (a *Assembler) Js(target Operand) error   { return a.Jcc(CondS, target) }
func (a *Assembler) Jz(target Operand) error   { return a.Jcc(CondZ, target) }

func (a *Assembler) Seta(dst Operand) error   { return a.Setcc(CondA, dst) }
func (a *Assembler) Setae(dst Operand) error  { return a.Setcc(CondAe, dst) }
func (a *Assembler) Setb(dst Operand) error   { return a.Setcc(CondB, dst) }
func (a *Assembler) Setbe(dst Operand) error  { return a.Setcc(CondBe, dst) }
func (a *Assembler) Setc(dst Operand) error   { return a.Setcc(CondC, dst) }
func (a *Assembler) Sete(dst Operand) error   { return a.Setcc(CondE, dst) }
func (a *Assembler) Setg(dst Operand) error   { return a.Setcc(CondG, dst) }
func (a *Assembler) Setge(dst Operand) error  { return a.Setcc(CondGe, dst) }
func (a *Assembler) Setl(dst Operand) error   { return a.Setcc(CondL, dst) }
func (a *Assembler) Setle(dst Operand) error  { return a.Setcc(CondLe, dst) }
func (a *Assembler) Setna(dst Operand) error  { return a.Setcc(CondNa, dst) }
func (a *Assembler) Setnae(dst Operand) error { return a.Setcc(CondNae, dst) }
func (a *Assembler) Setnb(dst Operand) error  { return a.Setcc(CondNb, dst) }
func (a *Assembler) Setnbe(dst Operand) error { return a.Setcc(CondNbe, dst) }
func (a *Assembler) Setnc(dst Operand) error  { return a.Setcc(CondNc, dst) }
func (a *Assembler) Setne(dst Operand) error  { return a.Setcc(CondNe, dst) }
func (a *Assembler) Setng(dst Operand) error  { return a.Setcc(CondNg, dst) }
func (a *Assembler) Setnge(dst Operand) error { return a.Setcc(CondNge, dst) }
func (a *Assembler) Setnl(dst Operand) error  { return a.Setcc(CondNl, dst) }
func (a *Assembler) Setnle(dst Operand) error { return a.Setcc(CondNle, dst) }
func (a *Assembler) Setno(dst Operand) error  { return a.Setcc(CondNo, dst) }
func (a *Assembler) Setnp(dst Operand) error  { return a.Setcc(CondNp, dst) }
func (a *Assembler) Setns(dst Operand) error  { return a.Setcc(CondNs, dst) }
func (a *Assembler) Setnz(dst Operand) error  { return a.Setcc(CondNz, dst) }
func (a *Assembler) Seto(dst Operand) error   { return a.Setcc(CondO, dst) }
func (a *Assembler) Setp(dst Operand) error   { return a.Setcc(CondP, dst) }
func (a *Assembler) Setpe(dst Operand) error  { return a.Setcc(CondPe, dst) }
func (a *Assembler) Setpo(dst Operand) error  { return a.Setcc(CondPo, dst) }
func (a *Assembler) Sets(dst Operand) error   { return a.Setcc(CondS, dst) }
func (a *Assembler) Setz(dst Operand) error   { return a.Setcc(CondZ, dst) }
