package users

// Seed returns the mock users loaded at startup.
func Seed() []User {
	return []User{
		{
			ID: 1, RUT: "18745623-9", Nombre: "Martina Valenzuela Ortiz",
			Email: "mvalenzuela@empresademo.cl", Telefono: "+56 2 2456 7890",
			Empresa: "CHUBB Seguros", Perfil: "Administrador", Estado: Active,
			Ubicacion: "Oficina Principal, Santiago", Departamento: "Tecnología",
			TicketsAsignados: 12, FechaIngreso: "Ene 2024",
		},
		{
			ID: 2, RUT: "17892345-K", Nombre: "Sebastián Ramírez Flores",
			Email: "sramirez@empresademo.cl", Telefono: "+56 2 2567 8901",
			Empresa: "CHUBB Seguros", Perfil: "Usuario", Estado: Active,
			Ubicacion: "Oficina Principal, Santiago", Departamento: "Operaciones",
			TicketsAsignados: 8, FechaIngreso: "Mar 2024",
		},
		{
			ID: 3, RUT: "19234567-1", Nombre: "Valentina Cortés Medina",
			Email: "vcortes@empresademo.cl", Telefono: "+56 2 2678 9012",
			Empresa: "CHUBB Seguros", Perfil: "Usuario", Estado: Active,
			Ubicacion: "Sucursal Concepción", Departamento: "Siniestros",
			TicketsAsignados: 15, FechaIngreso: "Sep 2024",
		},
		{
			ID: 4, RUT: "16543210-7", Nombre: "Benjamín Soto Vargas",
			Email: "bsoto@empresademo.cl", Telefono: "+56 2 2789 0123",
			Empresa: "CHUBB Seguros", Perfil: "Supervisor", Estado: Active,
			Ubicacion: "Oficina Principal, Santiago", Departamento: "Soporte Técnico",
			TicketsAsignados: 20, FechaIngreso: "Feb 2024",
		},
		{
			ID: 5, RUT: "15678901-2", Nombre: "Isidora Núñez Pizarro",
			Email: "inunez@empresademo.cl", Telefono: "+56 2 2890 1234",
			Empresa: "CHUBB Seguros", Perfil: "Usuario", Estado: Inactive,
			Ubicacion: "Sucursal Valparaíso", Departamento: "Ventas",
			TicketsAsignados: 3, FechaIngreso: "Dic 2023",
		},
		{
			ID: 6, RUT: "20123456-8", Nombre: "Tomás Fuentes Contreras",
			Email: "tfuentes@empresademo.cl", Telefono: "+56 2 2901 2345",
			Empresa: "CHUBB Seguros", Perfil: "Usuario", Estado: Active,
			Ubicacion: "Sucursal Viña del Mar", Departamento: "Atención al Cliente",
			TicketsAsignados: 11, FechaIngreso: "Abr 2024",
		},
	}
}
