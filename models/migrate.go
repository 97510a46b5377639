package models

// AllModels returns every model registered for migration, in dependency order.
func AllModels() []interface{} {
	return []interface{}{
		&PipelineStage{},
		&Contact{},
		&Client{},
		&Lawyer{},
		&Case{},
		&OpposingClient{},
		&CaseWitness{},
		&Person{},
		&Task{},
		&Appointment{},
		&EmailTemplate{},
		&EmailSend{},
		&Form{},
		&Audience{},
		&Hearing{},
		&CasePoint{},
		&Document{},
		&SettingOption{},
	}
}
